package grape

import (
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/grape-extractor/infrastructure/integrator/grape/grapeclient"
	"github.com/vfg2006/grape-extractor/internal/config"
	"github.com/vfg2006/grape-extractor/internal/domain"
)

// ErrUnitWithoutID indica uma linha da listagem de unidades sem o campo ID
var ErrUnitWithoutID = errors.New("linha da listagem de unidades sem o campo ID")

type GrapeIntegrator interface {
	Authenticate() error
	ListUnitIDs(category string, date time.Time) ([]int64, error)
	ListUnitDetails(category string, unitID int64, date time.Time) ([]*domain.Record, error)
}

type GrapeService struct {
	cfg    *config.Config
	Client grapeclient.Client
}

func New(cfg *config.Config, client grapeclient.Client) GrapeIntegrator {
	return &GrapeService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *GrapeService) Authenticate() error {
	return s.Client.Authenticate()
}

// ListUnitIDs devolve os IDs das unidades ativas da categoria no dia
// informado, na ordem em que a API os listou.
func (s *GrapeService) ListUnitIDs(category string, date time.Time) ([]int64, error) {
	rows, err := s.Client.GetUnits(category, &date)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		if row.ID == nil {
			return nil, errors.Wrapf(ErrUnitWithoutID, "categoria %s", category)
		}

		ids = append(ids, *row.ID)
	}

	return ids, nil
}

func (s *GrapeService) ListUnitDetails(category string, unitID int64, date time.Time) ([]*domain.Record, error) {
	return s.Client.GetUnitDetails(category, unitID, &date)
}
