package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/harborview/marina-api/internal/constants"
	apierrors "github.com/harborview/marina-api/internal/errors"
	"github.com/harborview/marina-api/internal/middleware"
	"github.com/harborview/marina-api/internal/models"
	"github.com/harborview/marina-api/internal/repository"
	"github.com/harborview/marina-api/internal/services"
	"gorm.io/gorm"
)

// subjectHeader lets each test request pick its caller without going
// through the JWT gate; the rest of the middleware chain is real.
const subjectHeader = "X-Test-Subject"

func injectSubject() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sub := c.GetHeader(subjectHeader); sub != "" {
			c.Set(constants.ContextKeySubject, sub)
		}
		c.Next()
	}
}

// newTestRouter wires the production route table against the given
// database, with the token gate replaced by the subject header.
func newTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	boatRepo := repository.NewBoatRepository(db)
	loadRepo := repository.NewLoadRepository(db)
	userRepo := repository.NewUserRepository(db)

	boatService := services.NewBoatService(boatRepo, loadRepo)
	loadService := services.NewLoadService(loadRepo)
	userService := services.NewUserService(userRepo)

	boatHandler := NewBoatHandler(boatService, "")
	loadHandler := NewLoadHandler(loadService, "")
	userHandler := NewUserHandler(userService)

	resolveUser := middleware.ResolveUser(userRepo)
	requireOwner := middleware.RequireBoatOwner(boatRepo)
	jsonBody := middleware.RequireJSONBody()
	jsonAccept := middleware.RequireJSONAccept()

	r := gin.New()
	r.Use(injectSubject())

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		apierrors.MethodNotAllowed(c)
	})

	boats := r.Group("/boats")
	{
		boats.POST("", jsonBody, jsonAccept, resolveUser, boatHandler.Create)
		boats.GET("", jsonAccept, resolveUser, boatHandler.List)
		boats.PATCH("/:boat_id", jsonBody, jsonAccept, resolveUser, requireOwner, boatHandler.Update)
		boats.PUT("/:boat_id", jsonBody, jsonAccept, resolveUser, requireOwner, boatHandler.Replace)
		boats.DELETE("/:boat_id", resolveUser, requireOwner, boatHandler.Delete)
		boats.PATCH("/:boat_id/:load_id", resolveUser, requireOwner, boatHandler.AttachLoad)
		boats.DELETE("/:boat_id/:load_id", resolveUser, requireOwner, boatHandler.DetachLoad)
	}

	loads := r.Group("/loads")
	{
		loads.POST("", jsonBody, jsonAccept, loadHandler.Create)
		loads.GET("", jsonAccept, loadHandler.List)
		loads.PATCH("/:load_id", jsonBody, jsonAccept, loadHandler.Update)
		loads.PUT("/:load_id", jsonBody, jsonAccept, loadHandler.Replace)
		loads.DELETE("/:load_id", loadHandler.Delete)
	}

	r.GET("/users", jsonAccept, userHandler.List)

	return r
}

func jsonRequest(method, url string, body []byte, sub string) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	req.Header.Set("Accept", "application/json")
	if sub != "" {
		req.Header.Set(subjectHeader, sub)
	}
	return req
}

func createUser(db *gorm.DB, name, sub string) *models.User {
	user := &models.User{Name: name, Sub: sub}
	db.Create(user)
	return user
}

func createBoat(db *gorm.DB, name string, ownerID uint64) *models.Boat {
	boat := &models.Boat{Name: name, Type: "Sailboat", Length: 30, OwnerID: ownerID}
	db.Create(boat)
	return boat
}

func createLoad(db *gorm.DB, item string) *models.Load {
	load := &models.Load{Item: item, Volume: 5, Weight: 10}
	db.Create(load)
	return load
}
