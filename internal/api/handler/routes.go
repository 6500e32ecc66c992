package handler

import (
	"net/http"

	"github.com/vfg2006/grape-extractor/internal/api/handler/router"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Jobs(services JobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/jobs/:type/run",
			Method:  http.MethodPost,
			Handler: RunJob(services),
		},
		{
			Path:    "/v1/jobs/status",
			Method:  http.MethodGet,
			Handler: GetJobsStatus(services),
		},
	}
}
