package main

import (
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.etcd.io/bbolt"
	"os"
	"testing"
)

func TestBuildServiceContainer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	f, err := os.CreateTemp("", "db_*.db")
	assert.NoError(t, err)
	defer os.Remove(f.Name())

	serviceContainer, err := BuildServiceContainer(f.Name())

	assert.NoError(t, err)

	// check database
	assert.NotNil(t, serviceContainer.Database)
	assert.IsType(t, &bbolt.DB{}, serviceContainer.Database)

	// check evaluator
	assert.NotNil(t, serviceContainer.Evaluator)
	assert.IsType(t, &Evaluator{}, serviceContainer.Evaluator)

	evaluator := serviceContainer.Evaluator.(*Evaluator)
	assert.IsType(t, &ExpressionParser{}, evaluator.parser)

	// check webhook dispatcher
	assert.NotNil(t, serviceContainer.WebhookDispatcher)
	assert.IsType(t, &WebhookDispatcher{}, serviceContainer.WebhookDispatcher)

	// check sheet repository
	assert.NotNil(t, serviceContainer.SheetRepository)
	assert.IsType(t, &SheetRepository{}, serviceContainer.SheetRepository)

	sheetRepository := serviceContainer.SheetRepository.(*SheetRepository)
	assert.Equal(t, serviceContainer.Database, sheetRepository.db)
	assert.Equal(t, serviceContainer.Evaluator, sheetRepository.evaluator)
	assert.Equal(t, serviceContainer.WebhookDispatcher, sheetRepository.webhookDispatcher)

	assert.NotNil(t, sheetRepository.serializer)
	assert.IsType(t, &PositionBinarySerializer{}, sheetRepository.serializer)

	// check api controller
	assert.NotNil(t, serviceContainer.ApiController)
	assert.IsType(t, &ApiController{}, serviceContainer.ApiController)

	apiController := serviceContainer.ApiController.(*ApiController)
	assert.Equal(t, serviceContainer.SheetRepository, apiController.SheetRepository)
	assert.Equal(t, serviceContainer.WebhookDispatcher, apiController.WebhookDispatcher)

	// check router
	assert.NotNil(t, serviceContainer.Router)
	assert.IsType(t, &gin.Engine{}, serviceContainer.Router)

	// check routes
	routes := serviceContainer.Router.Routes()
	assert.NotNil(t, routes)
	// 5 api routes + health check
	assert.GreaterOrEqual(t, len(routes), 6)

	assert.NoError(t, serviceContainer.Database.Close())
}

func TestBuildServiceContainer_OpenFailure(t *testing.T) {
	dir, err := os.MkdirTemp("", "db_dir_*")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	_, err = BuildServiceContainer(dir)

	assert.Error(t, err)
}
