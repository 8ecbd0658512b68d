package app

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/biosecret/taskflow/config"
	"github.com/biosecret/taskflow/dashboard"
	"github.com/biosecret/taskflow/database"
	"github.com/biosecret/taskflow/events"
	"github.com/biosecret/taskflow/handlers"
	"github.com/biosecret/taskflow/router"
	"github.com/biosecret/taskflow/store"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp tạo ứng dụng Fiber với middleware và route
func NewApp(d *dashboard.Dashboard, broker *events.Broker, kv database.Storage, allowOrigins string) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "taskflow"})

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	// Đính kèm middleware để xử lý lỗi và ghi log
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path} ${latency}\n",
	}))

	router.SetupRoutes(app, handlers.New(d, broker, kv), d)
	config.AddSwaggerRoutes(app)

	return app
}

// openDashboard opens the configured storage and restores the saved session.
func openDashboard(cfg config.Config, publisher events.Publisher) (*dashboard.Dashboard, database.Storage, error) {
	kv, err := database.Open(cfg.Storage)
	if err != nil {
		return nil, nil, err
	}
	d := dashboard.New(store.New(kv), publisher)
	d.Restore()
	return d, kv, nil
}

// SetupAndRunApp khởi động ứng dụng Fiber
func SetupAndRunApp(cfg config.Config) error {
	broker := events.NewBroker()
	publishers := events.Multi{broker}

	var mqttPub *events.MQTTPublisher
	if cfg.MQTTURL != "" {
		hostname, _ := os.Hostname()
		p, err := events.NewMQTTPublisher(cfg.MQTTURL, "taskflow-"+hostname)
		if err != nil {
			// MQTT chỉ là kênh phụ, server vẫn chạy khi broker không kết nối được
			log.Printf("[app] MQTT disabled: %v", err)
		} else {
			mqttPub = p
			publishers = append(publishers, p)
		}
	}

	d, kv, err := openDashboard(cfg, publishers)
	if err != nil {
		return err
	}

	app := NewApp(d, broker, kv, cfg.CORSOrigins)

	listenErr := make(chan error, 1)
	go func() {
		log.Printf("[app] Listening on :%s (storage: %s)", cfg.Port, cfg.Storage.Driver)
		listenErr <- app.Listen(":" + cfg.Port)
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"taskflow": func(ctx context.Context) error {
				log.Println("[app] Graceful shutdown initiated...")
				if err := app.ShutdownWithContext(ctx); err != nil {
					return err
				}
				if mqttPub != nil {
					mqttPub.Close()
				}
				return kv.Close()
			},
		},
	)

	var exitCode int
	select {
	case err := <-listenErr:
		if err != nil {
			kv.Close()
			return fmt.Errorf("server stopped: %w", err)
		}
		exitCode = <-wait
	case exitCode = <-wait:
	}

	log.Printf("[app] exited with code %d", exitCode)
	if exitCode != 0 {
		return fmt.Errorf("shutdown finished with code %d", exitCode)
	}
	return nil
}
