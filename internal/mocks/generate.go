package mocks

//go:generate mockery --name ReclamoStore --srcpkg github.com/municipio-lab/muni-backend/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
