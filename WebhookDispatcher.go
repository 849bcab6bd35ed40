package main

import (
	"bytes"
	"fmt"
	json "github.com/bytedance/sonic"
	"gridsheet/contracts"
	"net/http"
	"time"
)

const WebhookWorkersCount = 5

type WebhookSendCommand struct {
	Webhook string
	Cell    *contracts.Cell
}

// WebhookDispatcher posts changed cells to subscribed URLs from a fixed pool
// of workers, keyed by canonical cell reference.
type WebhookDispatcher struct {
	queue    chan WebhookSendCommand
	webhooks map[string]string
}

func NewWebhookDispatcher() *WebhookDispatcher {
	return &WebhookDispatcher{
		queue:    make(chan WebhookSendCommand, 20),
		webhooks: map[string]string{},
	}
}

func (manager *WebhookDispatcher) SetWebhookUrl(cellKey string, webhookUrl string) {
	if webhookUrl == "" {
		delete(manager.webhooks, cellKey)
	} else {
		manager.webhooks[cellKey] = webhookUrl
	}
}

func (manager *WebhookDispatcher) GetWebhookUrl(cellKey string) string {
	return manager.webhooks[cellKey]
}

func (manager *WebhookDispatcher) Notify(cells []*contracts.Cell) {
	go manager.addToQueue(cells)
}

func (manager *WebhookDispatcher) addToQueue(cells []*contracts.Cell) {
	for _, cell := range cells {
		if webhook, ok := manager.webhooks[cell.Key]; ok {
			manager.queue <- WebhookSendCommand{
				Webhook: webhook,
				Cell:    cell,
			}
		}
	}
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < WebhookWorkersCount; i++ {
		go manager.runWebhookSenderWorker()
	}
}

func (manager *WebhookDispatcher) Close() {
	close(manager.queue)
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	client := &http.Client{
		Timeout: time.Second * 5,
	}

	var response *http.Response
	var err error

	for command := range manager.queue {
		payload, _ := json.Marshal(command.Cell)
		response, err = client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))

		if err != nil {
			fmt.Printf("Webhook send error: %s\n", err)
		} else if response.StatusCode >= 300 {
			fmt.Printf("Unexpected webhook response HTTP status: %s\n", response.Status)
		}
	}
}
