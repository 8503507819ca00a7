package notifier

import (
	"context"
	"sync"
	"time"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	amqpNotifierInstance contracts.Notifier
	onceAmqpNotifier     sync.Once
)

type amqpNotifier struct {
	Connection *amqp.Connection
	QueueName  string
	Log        *zap.Logger
}

func NewAmqpNotifier(connection *amqp.Connection, queueName string, logger *zap.Logger) contracts.Notifier {
	onceAmqpNotifier.Do(func() {
		amqpNotifierInstance = &amqpNotifier{
			Connection: connection,
			QueueName:  queueName,
			Log:        logger,
		}
	})
	return amqpNotifierInstance
}

func (n *amqpNotifier) Notify(ctx context.Context, kind, message string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	channel, err := n.Connection.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQChannel(err)
	}
	defer channel.Close()

	queue, err := channel.QueueDeclare(n.QueueName, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQQueueDeclare(err, n.QueueName)
	}

	body, err := json.Marshal(map[string]string{
		"kind":    kind,
		"message": message,
		"at":      time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = channel.PublishWithContext(ctx, "", queue.Name, false, false, amqp.Publishing{
		ContentType: constvars.MIMEApplicationJSON,
		Body:        body,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, n.QueueName)
	}

	n.Log.Info("amqpNotifier.Notify message published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("notice_kind", kind),
	)
	return nil
}
