//go:build integration

package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/care-for-plants/backend/config"
	"github.com/care-for-plants/backend/internal/infra/dependency"
	"github.com/care-for-plants/backend/internal/integration/persistence/model"
	"github.com/care-for-plants/backend/test/integration/mock"
)

const (
	testJWTSecret = "test-jwt-secret-key-for-testing-purposes"
	catalogPrefix = "/api/v1"
)

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		Name:                "care-for-plants-api",
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:      "pretty",
			Paths:       []string{"../features"},
			Tags:        tags,
			Concurrency: 1,
			Strict:      true,
			TestingT:    t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri         string
	headers     map[string]string
	client      *http.Client
	response    *response
	db          *mock.Db
	catalog     *mock.ApiMock
	timeMock    *mock.Time
	accessToken string
	refreshTok  string
	remembered  map[string]string
}

type response struct {
	status int
	raw    []byte
	body   any
}

var (
	serverInit sync.Once
	serverURL  string
	serverErr  error

	testDB      = mock.NewDb(modelTables(), modelsByTable())
	testCatalog = mock.NewApiServer()
	testRedis   = mock.NewRedis()
	testClock   = mock.NewTime()
)

func modelTables() []string {
	return []string{"users", "refresh_tokens", "care_profiles", "locations", "tracked_plants", "wishlist_entries"}
}

func modelsByTable() map[string]any {
	return map[string]any{
		"users":            &model.UserModel{},
		"refresh_tokens":   &model.RefreshTokenModel{},
		"care_profiles":    &model.CareProfileModel{},
		"locations":        &model.LocationModel{},
		"tracked_plants":   &model.TrackedPlantModel{},
		"wishlist_entries": &model.WishlistEntryModel{},
	}
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:   &http.Client{Timeout: 10 * time.Second},
		db:       testDB,
		catalog:  testCatalog,
		timeMock: testClock,
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)

	// User steps
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^I am a new user "([^"]*)"$`, test.iAmANewUser)

	// Catalog steps
	ctx.Given(`^the plant catalog knows species (\d+) as:$`, test.theCatalogKnowsSpecies)
	ctx.Given(`^the plant catalog search returns:$`, test.theCatalogSearchReturns)
	ctx.Given(`^the plant catalog is unavailable$`, test.theCatalogIsUnavailable)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.Step(`^I remember the response field "([^"]*)" as "([^"]*)"$`, test.iRememberTheResponseFieldAs)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response body should include "([^"]*)"$`, test.theResponseBodyShouldInclude)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should be empty$`, test.theResponseFieldShouldBeEmpty)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items?$`, test.theResponseFieldShouldHaveItems)

	// Catalog assertion steps
	ctx.Then(`^the plant catalog should have received (\d+) requests? for "([^"]*)"$`, test.theCatalogShouldHaveReceivedRequests)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshTok = ""
	t.response = nil
	t.remembered = make(map[string]string)

	t.timeMock.Reset()
	t.catalog.ClearResponses()
	mock.ClearRedis(testRedis)
	return t.db.ClearDB()
}

func startServer() {
	serverInit.Do(func() {
		gin.SetMode(gin.TestMode)
		testCatalog.Start()

		for key, value := range map[string]string{
			"ENV":                "test",
			"JWT_SECRET":         testJWTSecret,
			"REDIS_URL":          mock.RedisURL(testRedis),
			"TREFLE_API_TOKEN":   "integration-token",
			"TREFLE_BASE_URL":    testCatalog.GetUrl() + catalogPrefix,
			"TREFLE_TIMEOUT":     "2s",
			"PASSWORD_HASH_COST": "4",
		} {
			_ = os.Setenv(key, value)
		}
		cfg := config.Load()

		injector, err := dependency.NewInjector(context.Background(), cfg, testDB.DbConn, dependency.Options{
			Clock: testClock,
		})
		if err != nil {
			serverErr = err
			return
		}

		engine := injector.Router.Setup(cfg.Server.Environment)
		serverURL = httptest.NewServer(engine).URL
	})
}

func (t *testContext) theAPIServerIsRunning() error {
	startServer()
	if serverErr != nil {
		return serverErr
	}
	t.uri = serverURL

	resp, err := t.client.Get(t.uri + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}

func (t *testContext) todayIs(date string) error {
	today, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}
	t.timeMock.SetCurrentTime(today.Add(10 * time.Hour))
	return nil
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Test User",
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return t.db.DbConn.Create(user).Error
}

func (t *testContext) iAmLoggedInAs(email, password string) error {
	payload, _ := json.Marshal(map[string]string{"email": email, "password": password})
	previous := t.accessToken
	t.accessToken = ""
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/login", payload); err != nil {
		t.accessToken = previous
		return err
	}
	if t.response.status != http.StatusOK {
		return fmt.Errorf("login failed with status %d: %s", t.response.status, t.response.raw)
	}
	return t.captureTokens()
}

func (t *testContext) iAmANewUser(email string) error {
	const password = "GreenThumb123"
	if err := t.aUserExistsWithEmailAndPassword(email, password); err != nil {
		return err
	}
	return t.iAmLoggedInAs(email, password)
}

func (t *testContext) captureTokens() error {
	access, ok := getFieldValue(t.response.body, "access_token").(string)
	if !ok || access == "" {
		return fmt.Errorf("response has no access token: %s", t.response.raw)
	}
	t.accessToken = access
	if refresh, ok := getFieldValue(t.response.body, "refresh_token").(string); ok {
		t.refreshTok = refresh
	}
	return nil
}

func (t *testContext) theCatalogKnowsSpecies(id int, body *godog.DocString) error {
	t.catalog.SetResponse(http.MethodGet, fmt.Sprintf("%s/plants/%d", catalogPrefix, id), http.StatusOK, body.Content)
	return nil
}

func (t *testContext) theCatalogSearchReturns(body *godog.DocString) error {
	t.catalog.SetResponse(http.MethodGet, catalogPrefix+"/plants/search", http.StatusOK, body.Content)
	return nil
}

func (t *testContext) theCatalogIsUnavailable() error {
	t.catalog.ClearResponses()
	t.catalog.SetResponse(http.MethodGet, catalogPrefix+"/plants/search", http.StatusInternalServerError, `{"error":true}`)
	t.catalog.SetResponse(http.MethodGet, catalogPrefix+"/plants/*", http.StatusInternalServerError, `{"error":true}`)
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) iRememberTheResponseFieldAs(field, name string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %s", field, t.response.raw)
	}
	t.remembered[name] = fmt.Sprintf("%v", value)
	return nil
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshTok)
	for name, value := range t.remembered {
		content = strings.ReplaceAll(content, "{{"+name+"}}", value)
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode, raw: raw}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.response.body = string(raw)
		return nil
	}
	t.response.body = decoded

	if strings.HasSuffix(path, "/auth/register") || strings.HasSuffix(path, "/auth/refresh") {
		if resp.StatusCode < http.StatusBadRequest {
			return t.captureTokens()
		}
	}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expectedStatus, t.response.status, t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(string); ok {
		return fmt.Errorf("response is not JSON: %s", t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %s", t.response.raw)
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %s", field, t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseBodyShouldInclude(text string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.Contains(string(t.response.raw), t.replacePlaceholders(text)) {
		return fmt.Errorf("response does not include '%s'", text)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %s", field, t.response.raw)
	}

	expectedValue = t.replacePlaceholders(expectedValue)
	actual := fmt.Sprintf("%v", value)
	if actual != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %s", field, t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBeEmpty(field string) error {
	return t.theResponseFieldShouldHaveItems(field, 0)
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, quantity int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	items, ok := getFieldValue(t.response.body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %s", field, t.response.raw)
	}
	if len(items) != quantity {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, quantity, len(items))
	}
	return nil
}

func (t *testContext) theCatalogShouldHaveReceivedRequests(quantity int, path string) error {
	count := t.catalog.RequestCount(http.MethodGet, catalogPrefix+path)
	if count != quantity {
		return fmt.Errorf("expected %d catalog requests for %s, got %d", quantity, path, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	var count int64
	if err := t.db.DbConn.Model(entity).Count(&count).Error; err != nil {
		return err
	}
	if int(count) != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	var field = object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		switch v := field.(type) {
		case map[string]any:
			field = v[currentField]
		case []any:
			i, err := strconv.Atoi(currentField)
			if err != nil || i < 0 || i >= len(v) {
				return nil
			}
			field = v[i]
		default:
			return nil
		}
		if field == nil {
			return nil
		}
	}
	return field
}
