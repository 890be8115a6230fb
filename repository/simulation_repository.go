package repository

import "hipoteca-grid/domain"

// SimulationRepository persiste los resultados de estrategias evaluadas
// para que una capa de informes los consuma después.
type SimulationRepository interface {
	Save(result domain.GridSearchResult) error
	List() ([]domain.GridSearchResult, error)
}
