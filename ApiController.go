package main

import (
	"errors"
	"github.com/gin-gonic/gin"
	"gridsheet/contracts"
	"net/http"
)

type ApiController struct {
	SheetRepository   contracts.SheetRepository
	WebhookDispatcher contracts.WebhookDispatcher
}

type CellEndpointParams struct {
	CellId string `uri:"cell_id" binding:"required"`
}

type NavigateEndpointParams struct {
	CellId    string `uri:"cell_id" binding:"required"`
	Direction string `uri:"direction" binding:"required"`
}

// SetCellRequest deliberately has no `required` binding on Value: an empty
// value is the delete operation.
type SetCellRequest struct {
	Value string `json:"value"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url" binding:"required"`
}

func NewApiController(sheetRepository contracts.SheetRepository, webhookDispatcher contracts.WebhookDispatcher) *ApiController {
	return &ApiController{
		SheetRepository:   sheetRepository,
		WebhookDispatcher: webhookDispatcher,
	}
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SetCellRequest{}
	var response *contracts.Cell

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err = api.SheetRepository.SetCell(params.CellId, request.Value)

	if errors.Is(err, contracts.CellRefError) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusCreated, response)
	}
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var response *contracts.Cell

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.SheetRepository.GetCell(params.CellId)
	}

	if errors.Is(err, contracts.CellRefError) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) GetSheetAction(c *gin.Context) {
	response, err := api.SheetRepository.GetCellList()

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

// NavigateAction exposes grid navigation: the next position one step in the
// given direction, clamped at row/column 1.
func (api *ApiController) NavigateAction(c *gin.Context) {
	params := NavigateEndpointParams{}

	err := c.ShouldBindUri(&params)

	var position contracts.Position
	if err == nil {
		position, err = contracts.ParseRef(params.CellId)
	}

	var direction contracts.Direction
	if err == nil {
		direction, err = contracts.ParseDirection(params.Direction)
	}

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, gin.H{"cell_id": position.Next(direction).Ref()})
	}
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SubscribeRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	var position contracts.Position
	if err == nil {
		position, err = contracts.ParseRef(params.CellId)
	}

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else {
		api.WebhookDispatcher.SetWebhookUrl(position.Ref(), request.WebhookUrl)
		c.JSON(http.StatusCreated, gin.H{"cell_id": position.Ref(), "webhook_url": request.WebhookUrl})
	}
}
