package contracts

type WebhookDispatcher interface {
	SetWebhookUrl(cellKey string, webhookUrl string)
	GetWebhookUrl(cellKey string) string
	Notify(cells []*Cell)
	Start()
	Close()
}
