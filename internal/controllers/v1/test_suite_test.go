package v1_test

import (
	"log"
	"net/http/httptest"
	"testing"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/router"
	"github.com/centsible/backend/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TestSuiteStandard struct {
	suite.Suite
	router *gin.Engine
	userID uuid.UUID
}

// Pseudo-Test run by go test that runs the test suite.
func TestStandard(t *testing.T) {
	suite.Run(t, new(TestSuiteStandard))
}

func (suite *TestSuiteStandard) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest is called before each test in the suite.
func (suite *TestSuiteStandard) SetupTest() {
	if err := models.Connect(test.TmpFile(suite.T())); err != nil {
		log.Fatalf("Database initialization failed with: %#v", err)
	}

	r, err := router.Router()
	if err != nil {
		log.Fatalf("Router initialization failed with: %#v", err)
	}

	suite.router = r
	suite.userID = uuid.New()
}

// TearDownTest is called after each test in the suite.
func (suite *TestSuiteStandard) TearDownTest() {
	sqlDB, err := models.DB.DB()
	if err != nil {
		log.Fatalf("Database connection for teardown failed with: %#v", err)
	}
	sqlDB.Close()
}

// request performs a request as the suite's user.
func (suite *TestSuiteStandard) request(method, url, body string) httptest.ResponseRecorder {
	return test.Request(suite.T(), suite.router, method, url, body, map[string]string{
		"X-User-ID": suite.userID.String(),
	})
}
