package main

import (
	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"
	"gridsheet/contracts"
)

type ServiceContainer struct {
	Database          *bbolt.DB
	ApiController     contracts.ApiController
	SheetRepository   contracts.SheetRepository
	Evaluator         contracts.Evaluator
	WebhookDispatcher contracts.WebhookDispatcher
	Router            *gin.Engine
}

func BuildServiceContainer(configDbPath string) (container ServiceContainer, err error) {
	container.Database, err = bbolt.Open(configDbPath, 0600, nil)
	if err != nil {
		return
	}

	serializer := NewPositionBinarySerializer()
	parser := NewExpressionParser()

	container.Evaluator = NewEvaluator(parser)
	container.WebhookDispatcher = NewWebhookDispatcher()
	container.SheetRepository = NewSheetRepository(container.Database, container.Evaluator, serializer, container.WebhookDispatcher)
	container.ApiController = NewApiController(container.SheetRepository, container.WebhookDispatcher)

	container.Router = SetupRouter(container.ApiController)

	return
}
