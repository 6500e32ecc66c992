package grapeclient

import (
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"

	grapedomain "github.com/vfg2006/grape-extractor/infrastructure/integrator/grape/domain"
	"github.com/vfg2006/grape-extractor/internal/config"
	"github.com/vfg2006/grape-extractor/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// dateParamLayout é o formato dd.mm.aaaa exigido pelos parâmetros
// dateFrom/dateTo da API da GrapeMedia.
const dateParamLayout = "02.01.2006"

type Client interface {
	Authenticate() error
	GetUnits(category string, date *time.Time) ([]grapedomain.UnitRow, error)
	GetUnitDetails(category string, unitID int64, date *time.Time) ([]*domain.Record, error)
}

// Session guarda o token devolvido pelo login. Depois de criada não é
// alterada; um novo login cria uma nova sessão.
type Session struct {
	Token string
}

// AuthorizationHeader monta o valor do cabeçalho de autorização. A API
// usa o esquema "Basic" com o token cru, sem codificação adicional.
func (s *Session) AuthorizationHeader() string {
	return "Basic " + s.Token
}

type GrapeClient struct {
	httpClient *http.Client
	config     *config.Config
	session    *Session
}

func NewClient(cfg *config.Config) Client {
	return &GrapeClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Grape.TimeoutSeconds) * time.Second,
		},
		config: cfg,
	}
}

// ensureAuthenticated falha antes de qualquer I/O de rede quando o login
// ainda não aconteceu.
func (c *GrapeClient) ensureAuthenticated() error {
	if c.session == nil {
		return ErrNotAuthenticated
	}

	return nil
}

// applyDateParams adiciona dateFrom e dateTo à consulta, ambos com a mesma
// data. A API interpreta o par como o dia único a consultar.
func applyDateParams(endpoint *url.URL, date *time.Time) {
	if date == nil {
		return
	}

	formatted := date.Format(dateParamLayout)

	query := endpoint.Query()
	query.Set("dateFrom", formatted)
	query.Set("dateTo", formatted)
	endpoint.RawQuery = query.Encode()
}
