package handlers_fiber

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"smt-backend/internal/api"
	"smt-backend/internal/entities"
	"smt-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

func newTestApp(t *testing.T) (*fiber.App, *memRepo) {
	t.Helper()

	repo := newMemRepo()
	log := zap.NewNop().Sugar()
	uc := usecase.New(log, repo, time.Second)

	app := fiber.New()
	RegisterHandlers(app, NewHandler(log, uc))
	return app, repo
}

func call(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func signup(t *testing.T, app *fiber.App, name, email string) api.User {
	t.Helper()

	status, env := call(t, app, http.MethodPost, "/api/user/signup", `{"name":"`+name+`","email":"`+email+`"}`)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "created", env.Status)
	return decode[api.User](t, env)
}

func TestTeamEndToEnd(t *testing.T) {
	app, _ := newTestApp(t)
	user := signup(t, app, "Alice", "alice@example.com")

	status, env := call(t, app, http.MethodPost, "/api/team", `{"name":"Pandora","users":["`+user.ID+`"]}`)
	require.Equal(t, http.StatusCreated, status)
	team := decode[api.Team](t, env)
	require.Len(t, team.ID, 24)
	require.Equal(t, []string{user.ID}, team.Users)

	status, env = call(t, app, http.MethodGet, "/api/team/"+team.ID+"/users", "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "success", env.Status)
	require.Equal(t, []api.User{user}, decode[[]api.User](t, env))

	status, env = call(t, app, http.MethodPut, "/api/team/"+team.ID, `{"name":"Olympus"}`)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Olympus", decode[api.Team](t, env).Name)

	status, env = call(t, app, http.MethodGet, "/api/team/"+team.ID, "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Olympus", decode[api.Team](t, env).Name)
}

func TestTeamCreateDropsUnknownMembers(t *testing.T) {
	app, _ := newTestApp(t)
	user := signup(t, app, "Alice", "alice@example.com")
	ghost := entities.NewID().Hex()

	status, env := call(t, app, http.MethodPost, "/api/team",
		`{"name":"Pandora","users":["`+user.ID+`","`+ghost+`","`+user.ID+`"]}`)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, []string{user.ID}, decode[api.Team](t, env).Users)
}

func TestTeamUsersDanglingMember(t *testing.T) {
	app, repo := newTestApp(t)
	user := signup(t, app, "Alice", "alice@example.com")

	_, env := call(t, app, http.MethodPost, "/api/team", `{"name":"Pandora","users":["`+user.ID+`"]}`)
	team := decode[api.Team](t, env)

	id, err := entities.ParseID(user.ID)
	require.NoError(t, err)
	delete(repo.users, id)

	status, env := call(t, app, http.MethodGet, "/api/team/"+team.ID+"/users", "")
	require.Equal(t, http.StatusNotFound, status)
	require.Empty(t, env.Data)
}

func TestMalformedIdentifiers(t *testing.T) {
	app, _ := newTestApp(t)

	paths := []string{
		"/api/user/123",
		"/api/team/zzzzzzzzzzzzzzzzzzzzzzzz",
		"/api/meeting/" + strings.ToUpper(entities.NewID().Hex()) + "0",
		"/api/meeting_config/abc",
		"/api/user_time/-",
	}
	for _, p := range paths {
		status, env := call(t, app, http.MethodGet, p, "")
		require.Equal(t, http.StatusUnprocessableEntity, status, p)
		require.Equal(t, "unprocessable_input", env.Status, p)
	}

	status, _ := call(t, app, http.MethodPost, "/api/team", `{"name":"Pandora","users":["nope"]}`)
	require.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestGetMissingEntities(t *testing.T) {
	app, _ := newTestApp(t)
	id := entities.NewID().Hex()

	for _, p := range []string{"/api/user/", "/api/team/", "/api/meeting/", "/api/meeting_config/", "/api/user_time/"} {
		status, env := call(t, app, http.MethodGet, p+id, "")
		require.Equal(t, http.StatusNotFound, status, p)
		require.Equal(t, "not_found", env.Status, p)
	}
}

func TestSignupLoginAndUserLifecycle(t *testing.T) {
	app, _ := newTestApp(t)
	user := signup(t, app, "Alice", "alice@example.com")

	status, env := call(t, app, http.MethodPost, "/api/user/signup", `{"name":"Other","email":"alice@example.com"}`)
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, "conflict", env.Status)

	status, env = call(t, app, http.MethodPost, "/api/user/login", `{"email":"alice@example.com"}`)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, user, decode[api.User](t, env))

	status, env = call(t, app, http.MethodPost, "/api/user/login", `{"email":"bob@example.com"}`)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "not_authorized", env.Status)

	padded := signup(t, app, "Carol", " carol@example.com ")
	require.Equal(t, "carol@example.com", padded.Email)
	status, env = call(t, app, http.MethodPost, "/api/user/login", `{"email":" carol@example.com "}`)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, padded, decode[api.User](t, env))

	status, env = call(t, app, http.MethodPut, "/api/user/"+user.ID, `{"name":"Alicia"}`)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Alicia", decode[api.User](t, env).Name)

	status, _ = call(t, app, http.MethodDelete, "/api/user/"+user.ID, "")
	require.Equal(t, http.StatusOK, status)

	status, _ = call(t, app, http.MethodDelete, "/api/user/"+user.ID, "")
	require.Equal(t, http.StatusConflict, status)
}

func TestMeetingConfigLifecycle(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := call(t, app, http.MethodPost, "/api/meeting_config",
		`{"team_id":"`+entities.NewID().Hex()+`","desired_duration":900,"meeting_name":"Daily","meeting_type":"DAILY"}`)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "not_found", env.Status)

	_, env = call(t, app, http.MethodPost, "/api/team", `{"name":"Pandora","users":[]}`)
	team := decode[api.Team](t, env)

	status, _ = call(t, app, http.MethodPost, "/api/meeting_config",
		`{"team_id":"`+team.ID+`","desired_duration":-1,"meeting_name":"Daily","meeting_type":"DAILY"}`)
	require.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = call(t, app, http.MethodPost, "/api/meeting_config",
		`{"team_id":"`+team.ID+`","desired_duration":900,"meeting_name":"Daily","meeting_type":"WEEKLY"}`)
	require.Equal(t, http.StatusUnprocessableEntity, status)

	status, env = call(t, app, http.MethodPost, "/api/meeting_config",
		`{"team_id":"`+team.ID+`","desired_duration":900,"meeting_name":"Pandora Daily","meeting_type":"DAILY"}`)
	require.Equal(t, http.StatusCreated, status)
	cfg := decode[api.MeetingConfig](t, env)
	require.Equal(t, "DAILY", cfg.MeetingType)
	require.Empty(t, cfg.Description)
	require.NotContains(t, string(env.Data), "description")

	status, env = call(t, app, http.MethodPut, "/api/meeting_config/"+cfg.ID,
		`{"team_id":"`+team.ID+`","desired_duration":3600,"meeting_name":"Pandora Retro","description":"biweekly","meeting_type":"RETRO"}`)
	require.Equal(t, http.StatusOK, status)
	updated := decode[api.MeetingConfig](t, env)
	require.Equal(t, cfg.ID, updated.ID)
	require.Equal(t, uint32(3600), updated.DesiredDuration)
	require.Equal(t, "RETRO", updated.MeetingType)

	status, env = call(t, app, http.MethodGet, "/api/meeting_config/"+cfg.ID, "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, updated, decode[api.MeetingConfig](t, env))

	status, _ = call(t, app, http.MethodPut, "/api/meeting_config/"+entities.NewID().Hex(),
		`{"team_id":"`+team.ID+`","desired_duration":1,"meeting_name":"x","meeting_type":"RETRO"}`)
	require.Equal(t, http.StatusNotFound, status)
}

func TestMeetingCreateModes(t *testing.T) {
	app, _ := newTestApp(t)

	_, env := call(t, app, http.MethodPost, "/api/team", `{"name":"Pandora","users":[]}`)
	team := decode[api.Team](t, env)
	_, env = call(t, app, http.MethodPost, "/api/meeting_config",
		`{"team_id":"`+team.ID+`","desired_duration":900,"meeting_name":"Daily","meeting_type":"DAILY"}`)
	cfg := decode[api.MeetingConfig](t, env)

	before := time.Now().UTC().Add(-time.Second)
	status, env := call(t, app, http.MethodPost, "/api/meeting", `{"config_id":"`+cfg.ID+`"}`)
	require.Equal(t, http.StatusCreated, status)
	started := decode[api.Meeting](t, env)
	require.Equal(t, cfg.ID, *started.ConfigID)
	require.Equal(t, uint16(0), started.Duration)
	require.True(t, started.DateUTC.After(before))
	require.Contains(t, string(env.Data), `"duration":0`)

	status, _ = call(t, app, http.MethodPost, "/api/meeting", `{"config_id":"`+entities.NewID().Hex()+`"}`)
	require.Equal(t, http.StatusNotFound, status)

	status, env = call(t, app, http.MethodPost, "/api/meeting", `{"duration":65535,"date_utc":"2024-05-01T09:00:00Z"}`)
	require.Equal(t, http.StatusCreated, status)
	standalone := decode[api.Meeting](t, env)
	require.Equal(t, uint16(65535), standalone.Duration)
	require.Nil(t, standalone.ConfigID)
	require.NotContains(t, string(env.Data), "config_id")

	status, env = call(t, app, http.MethodPost, "/api/meeting", `{"duration":65536,"date_utc":"2024-05-01T09:00:00Z"}`)
	require.Equal(t, http.StatusUnprocessableEntity, status)
	require.Equal(t, "unprocessable_input", env.Status)

	status, _ = call(t, app, http.MethodPost, "/api/meeting", `{}`)
	require.Equal(t, http.StatusUnprocessableEntity, status)

	status, env = call(t, app, http.MethodGet, "/api/meeting/"+standalone.ID, "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, standalone, decode[api.Meeting](t, env))

	status, env = call(t, app, http.MethodPost, "/api/meeting", `{"duration":60,"date_utc":"2024-05-01T11:00:00.123456789+02:00"}`)
	require.Equal(t, http.StatusCreated, status)
	precise := decode[api.Meeting](t, env)
	require.Equal(t, time.Date(2024, 5, 1, 9, 0, 0, 123000000, time.UTC), precise.DateUTC)

	_, env = call(t, app, http.MethodGet, "/api/meeting/"+precise.ID, "")
	require.Equal(t, precise, decode[api.Meeting](t, env))
}

func TestUserTimeLifecycle(t *testing.T) {
	app, _ := newTestApp(t)
	user := signup(t, app, "Alice", "alice@example.com")
	_, env := call(t, app, http.MethodPost, "/api/meeting", `{"duration":600,"date_utc":"2024-05-01T09:00:00Z"}`)
	meeting := decode[api.Meeting](t, env)

	status, _ := call(t, app, http.MethodPost, "/api/user_time",
		`{"user_id":"`+user.ID+`","meeting_id":"`+entities.NewID().Hex()+`","time":30}`)
	require.Equal(t, http.StatusNotFound, status)

	status, _ = call(t, app, http.MethodPost, "/api/user_time",
		`{"user_id":"`+user.ID+`","meeting_id":"`+meeting.ID+`","time":70000}`)
	require.Equal(t, http.StatusUnprocessableEntity, status)

	status, env = call(t, app, http.MethodPost, "/api/user_time",
		`{"user_id":"`+user.ID+`","meeting_id":"`+meeting.ID+`","time":30}`)
	require.Equal(t, http.StatusCreated, status)
	ut := decode[api.UserTime](t, env)

	status, env = call(t, app, http.MethodPut, "/api/user_time/"+ut.ID,
		`{"user_id":"`+user.ID+`","meeting_id":"`+meeting.ID+`","time":45}`)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, uint16(45), decode[api.UserTime](t, env).Time)

	status, env = call(t, app, http.MethodGet, "/api/user_time/"+ut.ID, "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, uint16(45), decode[api.UserTime](t, env).Time)

	status, env = call(t, app, http.MethodDelete, "/api/user_time/"+ut.ID, "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, ut.ID, decode[api.UserTime](t, env).ID)

	status, env = call(t, app, http.MethodDelete, "/api/user_time/"+ut.ID, "")
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, "conflict", env.Status)
}

func TestStoreFailureIsInternal(t *testing.T) {
	app, repo := newTestApp(t)
	repo.fail = errors.New("no reachable servers")

	status, env := call(t, app, http.MethodPost, "/api/user/login", `{"email":"alice@example.com"}`)
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, "internal_failure", env.Status)
	require.Equal(t, "internal error", env.Error)
}

func TestInvalidBody(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := call(t, app, http.MethodPost, "/api/user/signup", `{"name":`)
	require.Equal(t, http.StatusUnprocessableEntity, status)
	require.Equal(t, "unprocessable_input", env.Status)
}
