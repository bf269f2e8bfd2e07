package services

import (
	"encoding/json"
	"log"
	"time"

	models "bazaar-go-admin/model"
	"bazaar-go-admin/pkg/config"
	"bazaar-go-admin/pkg/monitoring"

	"github.com/streadway/amqp"
)

// AuditService 审计事件投递，后台的每次变更操作都会发一条事件进队列
type AuditService struct {
	Conn    *amqp.Connection
	Channel *amqp.Channel
	Queue   amqp.Queue
}

func NewAuditService() (*AuditService, error) {
	cfg := config.GetConfig()

	conn, err := amqp.Dial(cfg.AMQP.URL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	q, err := ch.QueueDeclare(
		cfg.AMQP.AuditQueue, // name
		true,                // durable
		false,               // delete when unused
		false,               // exclusive
		false,               // no-wait
		nil,                 // arguments
	)
	if err != nil {
		return nil, err
	}

	return &AuditService{
		Conn:    conn,
		Channel: ch,
		Queue:   q,
	}, nil
}

// PublishAuditEvent 投递审计事件
func (s *AuditService) PublishAuditEvent(event models.AuditEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = s.Channel.Publish(
		"",           // exchange
		s.Queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		})
	if err != nil {
		monitoring.RecordAuditEvent("failed")
		return err
	}
	monitoring.RecordAuditEvent("published")
	return nil
}

// ConsumeAuditEvents 消费审计事件，目前仅记录日志
func (s *AuditService) ConsumeAuditEvents() {
	msgs, err := s.Channel.Consume(
		s.Queue.Name, // queue
		"",           // consumer
		true,         // auto-ack
		false,        // exclusive
		false,        // no-local
		false,        // no-wait
		nil,          // args
	)
	if err != nil {
		log.Fatalf("Failed to register a consumer: %v", err)
	}

	go func() {
		for d := range msgs {
			var event models.AuditEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				log.Printf("Error decoding JSON: %v", err)
				continue
			}
			log.Printf("Audit event: %s actor=%d target=%s", event.EventType, event.ActorId, event.TargetId)
		}
	}()
}

// Close 释放连接
func (s *AuditService) Close() {
	if s.Channel != nil {
		s.Channel.Close()
	}
	if s.Conn != nil {
		s.Conn.Close()
	}
}

// 全局审计服务实例，初始化失败时为 nil，投递方需做判空
var GlobalAudit *AuditService

// InitAuditService 初始化全局审计服务，失败只告警不中断启动
func InitAuditService() {
	cfg := config.GetConfig()
	if !cfg.AMQP.Enabled {
		log.Print("审计事件队列未启用")
		return
	}

	svc, err := NewAuditService()
	if err != nil {
		log.Printf("WARNING: 审计事件队列初始化失败: %v", err)
		return
	}
	GlobalAudit = svc
	log.Printf("审计事件队列已就绪: %s", cfg.AMQP.AuditQueue)
}

// PublishAudit 便捷投递，队列不可用时静默丢弃
func PublishAudit(event models.AuditEvent) {
	if GlobalAudit == nil {
		return
	}
	if err := GlobalAudit.PublishAuditEvent(event); err != nil {
		log.Printf("WARNING: 审计事件投递失败: %v", err)
	}
}
