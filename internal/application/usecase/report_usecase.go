package usecase

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/talentbase/crm-api/internal/application/dto"
	"github.com/talentbase/crm-api/internal/domain"
	"github.com/talentbase/crm-api/internal/domain/access"
	"github.com/talentbase/crm-api/internal/domain/repository"
)

// ReportUseCase agregados sobre los clientes visibles para el llamador.
// Devuelve solo datos; el render de gráficos es del cliente.
type ReportUseCase struct {
	repo   repository.CustomerRepository
	access *access.Service
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.CustomerRepository, accessSvc *access.Service) *ReportUseCase {
	return &ReportUseCase{repo: repo, access: accessSvc}
}

// Summary calcula total, salario promedio/máximo/mínimo y el conteo por
// posición aplicada dentro del alcance del llamador (acción "view").
func (uc *ReportUseCase) Summary(ctx context.Context, callerEmail string) (*dto.ReportSummary, error) {
	ok, err := uc.access.CheckAccess(ctx, callerEmail, access.ActionView)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrForbidden
	}
	scope, err := uc.access.ScopeFor(ctx, callerEmail)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, scope)
	if err != nil {
		return nil, err
	}

	summary := &dto.ReportSummary{Positions: []dto.PositionCount{}}
	if len(list) == 0 {
		return summary, nil
	}

	sum := decimal.Zero
	maxSalary := list[0].Salary
	minSalary := list[0].Salary
	positions := map[string]int{}
	for _, c := range list {
		sum = sum.Add(c.Salary)
		if c.Salary.GreaterThan(maxSalary) {
			maxSalary = c.Salary
		}
		if c.Salary.LessThan(minSalary) {
			minSalary = c.Salary
		}
		pos := c.AppliedPosition
		if pos == "" {
			pos = "Unknown"
		}
		positions[pos]++
	}

	summary.Total = len(list)
	summary.AvgSalary = sum.Div(decimal.NewFromInt(int64(len(list)))).Round(0)
	summary.MaxSalary = maxSalary
	summary.MinSalary = minSalary

	names := make([]string, 0, len(positions))
	for name := range positions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		summary.Positions = append(summary.Positions, dto.PositionCount{Name: name, Value: positions[name]})
	}
	return summary, nil
}
