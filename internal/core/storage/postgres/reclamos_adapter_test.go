package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	v1 "github.com/municipio-lab/muni-backend/internal/api/v1"
	"github.com/municipio-lab/muni-backend/internal/core/storage"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestAdapter_CreateReclamo(t *testing.T) {
	tests := []struct {
		name       string
		mockResult func(mock sqlmock.Sqlmock, r *v1.Reclamo)
		assertions func(t *testing.T, r *v1.Reclamo, err error)
	}{
		{
			name: "success sets numero",
			mockResult: func(mock sqlmock.Sqlmock, r *v1.Reclamo) {
				mock.ExpectQuery(regexp.QuoteMeta(queryCreateReclamo)).
					WithArgs(r.ID, r.Telefono, r.Nombre, r.Categoria, r.Descripcion, r.Direccion, "pendiente", r.CreatedAt, r.UpdatedAt).
					WillReturnRows(sqlmock.NewRows([]string{"numero"}).AddRow(int64(1042)))
			},
			assertions: func(t *testing.T, r *v1.Reclamo, err error) {
				require.NoError(t, err)
				require.Equal(t, int64(1042), r.Numero)
			},
		},
		{
			name: "database error is wrapped",
			mockResult: func(mock sqlmock.Sqlmock, r *v1.Reclamo) {
				mock.ExpectQuery(regexp.QuoteMeta(queryCreateReclamo)).
					WillReturnError(errors.New("connection reset"))
			},
			assertions: func(t *testing.T, r *v1.Reclamo, err error) {
				require.ErrorContains(t, err, "failed to save reclamo")
				require.Equal(t, int64(0), r.Numero)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			adapter, mock, db := newMockAdapter(t)
			defer db.Close()

			r := sampleReclamo()
			tc.mockResult(mock, r)

			err := adapter.CreateReclamo(context.Background(), r)
			tc.assertions(t, r, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAdapter_GetReclamo(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	want := sampleReclamo()
	want.Numero = 7
	mock.ExpectQuery(regexp.QuoteMeta(queryGetReclamo)).
		WithArgs(want.ID).
		WillReturnRows(sqlmock.NewRows(reclamoRowColumns()).AddRow(reclamoRowValues(want)...))
	mock.ExpectQuery(regexp.QuoteMeta(queryGetReclamo)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(reclamoRowColumns()))

	got, err := adapter.GetReclamo(context.Background(), want.ID)
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = adapter.GetReclamo(context.Background(), "missing")
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_ListReclamos(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	first := sampleReclamo()
	second := sampleReclamo()
	second.ID = "8d7f6c1e-1111-4c2a-9f55-000000000002"
	second.Estado = v1.EstadoEnProceso

	mock.ExpectQuery(regexp.QuoteMeta(queryListReclamos)).
		WithArgs("3491123456", "", defaultListLimit).
		WillReturnRows(sqlmock.NewRows(reclamoRowColumns()).
			AddRow(reclamoRowValues(first)...).
			AddRow(reclamoRowValues(second)...))
	mock.ExpectQuery(regexp.QuoteMeta(queryListReclamos)).
		WithArgs("", "resuelto", 10).
		WillReturnRows(sqlmock.NewRows(reclamoRowColumns()))

	got, err := adapter.ListReclamos(context.Background(), storage.ReclamoFilter{Telefono: "3491123456"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, v1.EstadoEnProceso, got[1].Estado)

	empty, err := adapter.ListReclamos(context.Background(), storage.ReclamoFilter{Estado: v1.EstadoResuelto, Limit: 10})
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_UpdateReclamoEstado(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	updated := sampleReclamo()
	updated.Estado = v1.EstadoResuelto
	updated.UpdatedAt = testNow.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(queryUpdateReclamoEstado)).
		WithArgs(updated.ID, "resuelto", updated.UpdatedAt).
		WillReturnRows(sqlmock.NewRows(reclamoRowColumns()).AddRow(reclamoRowValues(updated)...))
	mock.ExpectQuery(regexp.QuoteMeta(queryUpdateReclamoEstado)).
		WithArgs("missing", "cerrado", updated.UpdatedAt).
		WillReturnRows(sqlmock.NewRows(reclamoRowColumns()))

	got, err := adapter.UpdateReclamoEstado(context.Background(), updated.ID, v1.EstadoResuelto, updated.UpdatedAt)
	require.NoError(t, err)
	require.Equal(t, v1.EstadoResuelto, got.Estado)

	_, err = adapter.UpdateReclamoEstado(context.Background(), "missing", v1.EstadoCerrado, updated.UpdatedAt)
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewAdapter_MissingTableFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	_, err = NewAdapter(db)
	require.ErrorContains(t, err, "reclamos table does not exist")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewAdapter_PreparesStatements(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	for _, q := range []string{queryCreateReclamo, queryGetReclamo, queryListReclamos, queryUpdateReclamoEstado} {
		mock.ExpectPrepare(regexp.QuoteMeta(q))
	}
	mock.ExpectClose()

	adapter, err := NewAdapter(db)
	require.NoError(t, err)
	require.Same(t, db, adapter.DB())
	require.NoError(t, adapter.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}

func newMockAdapter(t *testing.T) (*Adapter, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	adapter := &Adapter{
		db:               db,
		stmtCreate:       mustPrepareStmt(t, db, mock, queryCreateReclamo),
		stmtGet:          mustPrepareStmt(t, db, mock, queryGetReclamo),
		stmtList:         mustPrepareStmt(t, db, mock, queryListReclamos),
		stmtUpdateEstado: mustPrepareStmt(t, db, mock, queryUpdateReclamoEstado),
	}

	return adapter, mock, db
}

func mustPrepareStmt(t *testing.T, db *sql.DB, mock sqlmock.Sqlmock, query string) *sql.Stmt {
	t.Helper()

	mock.ExpectPrepare(regexp.QuoteMeta(query))
	stmt, err := db.Prepare(query)
	require.NoError(t, err)

	return stmt
}

func sampleReclamo() *v1.Reclamo {
	return &v1.Reclamo{
		ID:          "8d7f6c1e-1111-4c2a-9f55-000000000001",
		Telefono:    "3491123456",
		Nombre:      "Vecina del barrio",
		Categoria:   "alumbrado",
		Descripcion: "Luminaria apagada",
		Direccion:   "San Martin 100",
		Estado:      v1.EstadoPendiente,
		CreatedAt:   testNow,
		UpdatedAt:   testNow,
	}
}

func reclamoRowColumns() []string {
	return []string{
		"id",
		"numero",
		"telefono",
		"nombre",
		"categoria",
		"descripcion",
		"direccion",
		"estado",
		"created_at",
		"updated_at",
	}
}

func reclamoRowValues(r *v1.Reclamo) []driver.Value {
	return []driver.Value{
		r.ID,
		r.Numero,
		r.Telefono,
		r.Nombre,
		r.Categoria,
		r.Descripcion,
		r.Direccion,
		string(r.Estado),
		r.CreatedAt,
		r.UpdatedAt,
	}
}
