package server

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"finplan/internal/engine"
)

func testServer() *Server {
	return New(log.New(io.Discard))
}

func request(t *testing.T, s *Server, method, path string, body string) *fasthttp.RequestCtx {
	t.Helper()
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	s.Handler(&ctx)
	return &ctx
}

func TestHealthz(t *testing.T) {
	ctx := request(t, testServer(), "GET", "/healthz", "")
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
}

func TestProjection(t *testing.T) {
	body := `{
		"name": "api-test",
		"horizon_years": 3,
		"initial_cash_on_hand": 100000,
		"cash_holdings": [{"name": "Savings", "initial_amount": 100000, "annual_interest_rate": 0.02}]
	}`

	ctx := request(t, testServer(), "POST", "/v1/projections", body)
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status = %d, body = %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	var result engine.Result
	if err := json.Unmarshal(ctx.Response.Body(), &result); err != nil {
		t.Fatal(err)
	}
	if result.RunID == "" {
		t.Error("missing run_id")
	}
	if len(result.Snapshots) != 4 {
		t.Errorf("snapshots = %d, want 4", len(result.Snapshots))
	}
	if result.ScenarioName != "api-test" {
		t.Errorf("scenario_name = %q", result.ScenarioName)
	}
}

func TestProjection_InvalidConfig(t *testing.T) {
	ctx := request(t, testServer(), "POST", "/v1/projections", `{"name": "bad", "horizon_years": 0}`)
	if ctx.Response.StatusCode() != fasthttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", ctx.Response.StatusCode())
	}

	var resp errorResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Message == "" {
		t.Error("error response should carry a message")
	}
}

func TestProjection_BadJSON(t *testing.T) {
	ctx := request(t, testServer(), "POST", "/v1/projections", `{not json`)
	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", ctx.Response.StatusCode())
	}
}

func TestProjection_WrongMethod(t *testing.T) {
	ctx := request(t, testServer(), "GET", "/v1/projections", "")
	if ctx.Response.StatusCode() != fasthttp.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", ctx.Response.StatusCode())
	}
}

func TestUnknownPath(t *testing.T) {
	ctx := request(t, testServer(), "GET", "/nope", "")
	if ctx.Response.StatusCode() != fasthttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", ctx.Response.StatusCode())
	}
}
