package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/checkmarble/marble-kpi/models"
	"github.com/checkmarble/marble-kpi/utils"
)

type KpiDefinitionRepository interface {
	ListKpiDefinitions(ctx context.Context, path string) ([]models.KpiDefinition, error)
	ParseKpiDefinitions(ctx context.Context, data []byte) ([]models.KpiDefinition, error)
}

// KpiDefinitionRepositoryYaml reads KPI definitions from a yaml document:
//
//	kpis:
//	  - name: gross_profit_roas
//	    formula: (Revenue - COGS) / Cost
//	    decimals: 2
type KpiDefinitionRepositoryYaml struct {
	validate *validator.Validate
}

type kpiDefinitionsFile struct {
	Kpis []models.KpiDefinition `yaml:"kpis" validate:"required,unique=Name,dive"`
}

func (repo *KpiDefinitionRepositoryYaml) ListKpiDefinitions(ctx context.Context, path string) ([]models.KpiDefinition, error) {
	data, err := readInputFile(path)
	if err != nil {
		return nil, err
	}
	definitions, err := repo.ParseKpiDefinitions(ctx, data)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", path)
	}
	return definitions, nil
}

func (repo *KpiDefinitionRepositoryYaml) ParseKpiDefinitions(ctx context.Context, data []byte) ([]models.KpiDefinition, error) {
	var file kpiDefinitionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(models.ErrInvalidKpiDefinition, err.Error())
	}
	// block scalars keep their final line break, which formulas do not accept
	for i := range file.Kpis {
		file.Kpis[i].Formula = strings.TrimSpace(file.Kpis[i].Formula)
	}

	if err := repo.validate.Struct(file); err != nil {
		// bad validation tags, not a user error
		var invalidValidationError *validator.InvalidValidationError
		if errors.As(err, &invalidValidationError) {
			return nil, err
		}

		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			reasons := make([]string, 0, len(validationErrors))
			for _, fieldError := range validationErrors {
				reasons = append(reasons, fmt.Sprintf("%s: failed on '%s'", fieldError.Namespace(), fieldError.Tag()))
			}
			return nil, errors.Wrap(models.ErrInvalidKpiDefinition, strings.Join(reasons, ", "))
		}
		return nil, err
	}

	utils.LoggerFromContext(ctx).DebugContext(ctx, fmt.Sprintf("loaded %d kpi definitions", len(file.Kpis)))
	return file.Kpis, nil
}
