package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/SogeMoge/xwsbot/internal/entities"
	"github.com/SogeMoge/xwsbot/internal/entities/reference"
	"github.com/SogeMoge/xwsbot/internal/errors"
	"github.com/SogeMoge/xwsbot/internal/handlers/httpapi"
	"github.com/SogeMoge/xwsbot/internal/pkg/lookup"
	referencemock "github.com/SogeMoge/xwsbot/internal/repositories/reference/mock"
	"github.com/SogeMoge/xwsbot/internal/services/importer"
	importermock "github.com/SogeMoge/xwsbot/internal/services/importer/mock"
)

const dataRoot = "submodules/xwing-data2/data"

type HandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *referencemock.MockRepository
	importer *importermock.MockService
	server   *httptest.Server
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = referencemock.NewMockRepository(s.ctrl)
	s.importer = importermock.NewMockService(s.ctrl)

	h, err := httpapi.New(&httpapi.Config{
		Repository: s.repo,
		Importer:   s.importer,
		DataRoot:   dataRoot,
	})
	s.Require().NoError(err)
	s.server = httptest.NewServer(h.Routes())
}

func (s *HandlerTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(method, path string) (int, map[string]any) {
	req, err := http.NewRequestWithContext(context.Background(), method, s.server.URL+path, nil)
	s.Require().NoError(err)

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	var body map[string]any
	if resp.ContentLength != 0 {
		_ = json.NewDecoder(resp.Body).Decode(&body)
	}
	return resp.StatusCode, body
}

func (s *HandlerTestSuite) TestHealthz() {
	status, _ := s.do(http.MethodGet, "/healthz")
	s.Equal(http.StatusOK, status)
}

func (s *HandlerTestSuite) TestLookups() {
	initiative := 5
	pilot := &reference.Pilot{XWS: "blackout", Name: "Blackout", Initiative: &initiative, Cost: entities.NumberOf(51), ShipXWS: "t70xwing"}

	testCases := []struct {
		name       string
		path       string
		setupMocks func()
		wantStatus int
		check      func(map[string]any)
	}{
		{
			name: "pilot found",
			path: "/pilots/blackout",
			setupMocks: func() {
				s.repo.EXPECT().LookupPilot(gomock.Any(), "blackout").Return(lookup.Found(pilot), nil)
			},
			wantStatus: http.StatusOK,
			check: func(body map[string]any) {
				s.Equal("Blackout", body["name"])
				s.EqualValues(51, body["cost"])
				s.Equal("t70xwing", body["ship_xws"])
			},
		},
		{
			name: "pilot missing",
			path: "/pilots/nobody",
			setupMocks: func() {
				s.repo.EXPECT().LookupPilot(gomock.Any(), "nobody").Return(lookup.NotFound[*reference.Pilot](), nil)
			},
			wantStatus: http.StatusNotFound,
			check: func(body map[string]any) {
				s.Equal("pilot nobody not found", body["error"])
			},
		},
		{
			name: "ship for pilot",
			path: "/pilots/blackout/ship",
			setupMocks: func() {
				s.repo.EXPECT().LookupShipForPilot(gomock.Any(), "blackout").
					Return(lookup.Found(&reference.Ship{XWS: "t70xwing", Name: "T-70 X-wing", Size: reference.SizeSmall}), nil)
			},
			wantStatus: http.StatusOK,
			check: func(body map[string]any) {
				s.Equal("T-70 X-wing", body["name"])
				s.Equal("Small", body["size"])
			},
		},
		{
			name: "faction found",
			path: "/factions/rebelalliance",
			setupMocks: func() {
				s.repo.EXPECT().LookupFaction(gomock.Any(), "rebelalliance").
					Return(lookup.Found(&reference.Faction{XWS: "rebelalliance", Name: "Rebel Alliance"}), nil)
			},
			wantStatus: http.StatusOK,
			check: func(body map[string]any) {
				s.Equal("Rebel Alliance", body["name"])
			},
		},
		{
			name: "upgrade missing",
			path: "/upgrades/gone",
			setupMocks: func() {
				s.repo.EXPECT().LookupUpgrade(gomock.Any(), "gone").Return(lookup.NotFound[*reference.Upgrade](), nil)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "store outage",
			path: "/upgrades/fearless",
			setupMocks: func() {
				s.repo.EXPECT().LookupUpgrade(gomock.Any(), "fearless").
					Return(lookup.NotFound[*reference.Upgrade](), errors.Unavailable("failed to read xws:upgrade:fearless"))
			},
			wantStatus: http.StatusServiceUnavailable,
			check: func(body map[string]any) {
				s.Equal("failed to read xws:upgrade:fearless", body["error"])
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMocks()

			status, body := s.do(http.MethodGet, tc.path)
			s.Equal(tc.wantStatus, status)
			if tc.check != nil {
				tc.check(body)
			}
		})
	}
}

func (s *HandlerTestSuite) TestReinit() {
	testCases := []struct {
		name        string
		setupMocks  func()
		wantStatus  int
		wantMessage string
		wantError   string
	}{
		{
			name: "probe found",
			setupMocks: func() {
				s.importer.EXPECT().Prepare(gomock.Any(), &importer.PrepareInput{Root: dataRoot}).
					Return(&importer.PrepareOutput{Pilots: 1}, nil)
				s.repo.EXPECT().LookupPilot(gomock.Any(), httpapi.ProbePilot).
					Return(lookup.Found(&reference.Pilot{XWS: "blackout"}), nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: httpapi.ReinitMessage,
		},
		{
			name: "probe missing still succeeds",
			setupMocks: func() {
				s.importer.EXPECT().Prepare(gomock.Any(), gomock.Any()).Return(&importer.PrepareOutput{}, nil)
				s.repo.EXPECT().LookupPilot(gomock.Any(), httpapi.ProbePilot).
					Return(lookup.NotFound[*reference.Pilot](), nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: httpapi.ReinitMessage,
		},
		{
			name: "import failure",
			setupMocks: func() {
				s.importer.EXPECT().Prepare(gomock.Any(), gomock.Any()).
					Return(nil, errors.NotFound("data root submodules/xwing-data2/data is not a directory"))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "data root submodules/xwing-data2/data is not a directory",
		},
		{
			name: "probe failure",
			setupMocks: func() {
				s.importer.EXPECT().Prepare(gomock.Any(), gomock.Any()).Return(&importer.PrepareOutput{}, nil)
				s.repo.EXPECT().LookupPilot(gomock.Any(), httpapi.ProbePilot).
					Return(lookup.NotFound[*reference.Pilot](), errors.Unavailable("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "connection refused",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMocks()

			status, body := s.do(http.MethodPost, "/reinit_db")
			s.Equal(tc.wantStatus, status)
			if tc.wantMessage != "" {
				s.Equal(tc.wantMessage, body["message"])
			}
			if tc.wantError != "" {
				s.Equal(tc.wantError, body["error"])
			}
		})
	}
}

func (s *HandlerTestSuite) TestReinitRequiresPost() {
	status, _ := s.do(http.MethodGet, "/reinit_db")
	s.Equal(http.StatusMethodNotAllowed, status)
}

func (s *HandlerTestSuite) TestNewValidation() {
	_, err := httpapi.New(&httpapi.Config{Repository: s.repo, Importer: s.importer})
	s.True(errors.IsInvalidArgument(err))

	_, err = httpapi.New(nil)
	s.True(errors.IsInvalidArgument(err))
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
