package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/harborview/marina-api/internal/database"
	"github.com/harborview/marina-api/internal/models"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// LoadHandlerTestSuite defines the test suite for the load endpoints
type LoadHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *LoadHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Boat{},
		&models.Load{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	suite.router = newTestRouter(suite.db)
}

// TearDownTest runs after each test
func (suite *LoadHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *LoadHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LoadHandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (suite *LoadHandlerTestSuite) attach(load *models.Load, boatID uint64) {
	suite.Require().NoError(suite.db.Model(load).Update("boat_id", boatID).Error)
}

func (suite *LoadHandlerTestSuite) TestCreateLoad() {
	payload := []byte(`{"item":"Crates of fish","volume":8,"weight":120}`)
	w := suite.serve(jsonRequest(http.MethodPost, "/loads", payload, ""))

	suite.Equal(http.StatusCreated, w.Code)
	body := suite.decode(w)
	suite.Equal("Crates of fish", body["item"])
	suite.Equal(float64(8), body["volume"])
	suite.Equal(float64(120), body["weight"])
	suite.Contains(body, "boat")
	suite.Nil(body["boat"])
	suite.Contains(body["self"], fmt.Sprintf("/loads/%v", body["id"]))
}

func (suite *LoadHandlerTestSuite) TestCreateLoadInvalid() {
	payload := []byte(`{"item":"Crates","volume":0,"weight":120}`)
	w := suite.serve(jsonRequest(http.MethodPost, "/loads", payload, ""))

	suite.Equal(http.StatusBadRequest, w.Code)
	body := suite.decode(w)
	suite.Equal("At least one required property is invalid or missing", body["message"])
}

func (suite *LoadHandlerTestSuite) TestListLoadsDefaultPageSize() {
	for i := 0; i < 7; i++ {
		createLoad(suite.db, fmt.Sprintf("Item %d", i))
	}

	w := suite.serve(jsonRequest(http.MethodGet, "/loads", nil, ""))
	suite.Equal(http.StatusOK, w.Code)

	body := suite.decode(w)
	suite.Equal(float64(7), body["total"])
	suite.Len(body["loads"].([]interface{}), 5)
	suite.Contains(body["next"], "limit=5")
	suite.Contains(body["next"], "offset=5")
}

func (suite *LoadHandlerTestSuite) TestListLoadsWindow() {
	for i := 0; i < 5; i++ {
		createLoad(suite.db, fmt.Sprintf("Item %d", i))
	}

	seen := map[float64]bool{}
	for _, offset := range []int{0, 2, 4} {
		url := fmt.Sprintf("/loads?limit=2&offset=%d", offset)
		w := suite.serve(jsonRequest(http.MethodGet, url, nil, ""))
		suite.Equal(http.StatusOK, w.Code)

		body := suite.decode(w)
		suite.Equal(float64(5), body["total"])
		for _, l := range body["loads"].([]interface{}) {
			id := l.(map[string]interface{})["id"].(float64)
			suite.False(seen[id], "page windows must be disjoint")
			seen[id] = true
		}
	}
	suite.Len(seen, 5)
}

func (suite *LoadHandlerTestSuite) TestAttachedLoadExposesBoatLinkOnly() {
	user := createUser(suite.db, "Alice", "auth0|alice")
	boat := createBoat(suite.db, "Orca", user.ID)
	load := createLoad(suite.db, "Crates")
	suite.attach(load, boat.ID)

	w := suite.serve(jsonRequest(http.MethodGet, "/loads", nil, ""))
	body := suite.decode(w)

	loads := body["loads"].([]interface{})
	suite.Require().Len(loads, 1)
	boatRef := loads[0].(map[string]interface{})["boat"].(map[string]interface{})
	suite.Contains(boatRef["self"], fmt.Sprintf("/boats/%d", boat.ID))
	suite.NotContains(boatRef, "id")
}

func (suite *LoadHandlerTestSuite) TestPatchLoad() {
	load := createLoad(suite.db, "Crates")

	payload := []byte(`{"weight":200}`)
	url := fmt.Sprintf("/loads/%d", load.ID)
	w := suite.serve(jsonRequest(http.MethodPatch, url, payload, ""))

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decode(w)
	suite.Equal("Crates", body["item"])
	suite.Equal(float64(5), body["volume"])
	suite.Equal(float64(200), body["weight"])
}

func (suite *LoadHandlerTestSuite) TestPatchLoadWhileAboard() {
	user := createUser(suite.db, "Alice", "auth0|alice")
	boat := createBoat(suite.db, "Orca", user.ID)
	load := createLoad(suite.db, "Crates")
	suite.attach(load, boat.ID)

	payload := []byte(`{"weight":200}`)
	url := fmt.Sprintf("/loads/%d", load.ID)
	w := suite.serve(jsonRequest(http.MethodPatch, url, payload, ""))

	suite.Equal(http.StatusForbidden, w.Code)
	body := suite.decode(w)
	suite.Equal("Load is on a boat. Remove the load from the boat to edit", body["message"])
}

func (suite *LoadHandlerTestSuite) TestPutLoad() {
	load := createLoad(suite.db, "Crates")

	payload := []byte(`{"item":"Barrels","volume":3,"weight":90}`)
	url := fmt.Sprintf("/loads/%d", load.ID)
	w := suite.serve(jsonRequest(http.MethodPut, url, payload, ""))

	suite.Equal(http.StatusCreated, w.Code)
	body := suite.decode(w)
	suite.Equal("Barrels", body["item"])
}

func (suite *LoadHandlerTestSuite) TestPutLoadRequiresAllFields() {
	load := createLoad(suite.db, "Crates")

	payload := []byte(`{"item":"Barrels"}`)
	url := fmt.Sprintf("/loads/%d", load.ID)
	w := suite.serve(jsonRequest(http.MethodPut, url, payload, ""))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LoadHandlerTestSuite) TestDeleteLoad() {
	load := createLoad(suite.db, "Crates")

	url := fmt.Sprintf("/loads/%d", load.ID)
	w := suite.serve(jsonRequest(http.MethodDelete, url, nil, ""))

	suite.Equal(http.StatusNoContent, w.Code)

	var count int64
	suite.db.Model(&models.Load{}).Where("id = ?", load.ID).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *LoadHandlerTestSuite) TestDeleteLoadWhileAboard() {
	user := createUser(suite.db, "Alice", "auth0|alice")
	boat := createBoat(suite.db, "Orca", user.ID)
	load := createLoad(suite.db, "Crates")
	suite.attach(load, boat.ID)

	url := fmt.Sprintf("/loads/%d", load.ID)
	w := suite.serve(jsonRequest(http.MethodDelete, url, nil, ""))

	suite.Equal(http.StatusForbidden, w.Code)
	body := suite.decode(w)
	suite.Equal("Load is on a boat. Remove the load from the boat first", body["message"])
}

func (suite *LoadHandlerTestSuite) TestLoadNotFound() {
	w := suite.serve(jsonRequest(http.MethodDelete, "/loads/999", nil, ""))

	suite.Equal(http.StatusNotFound, w.Code)
	body := suite.decode(w)
	suite.Equal("Load not found", body["message"])
}

func TestLoadHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LoadHandlerTestSuite))
}
