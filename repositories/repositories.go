package repositories

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/checkmarble/marble-kpi/models"
)

type Repositories struct {
	KpiDefinitionRepository KpiDefinitionRepository
	KpiSeriesRepository     KpiSeriesRepository
}

func NewRepositories() *Repositories {
	return &Repositories{
		KpiDefinitionRepository: &KpiDefinitionRepositoryYaml{validate: validator.New()},
		KpiSeriesRepository:     &KpiSeriesRepositoryJson{},
	}
}

func readInputFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrapf(models.NotFoundError, "file %s does not exist", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %s", path)
	}
	return data, nil
}
