package provider

import (
	"github.com/saralchem/orderdesk/internal/authz"
	"github.com/saralchem/orderdesk/internal/cache"
	"github.com/saralchem/orderdesk/internal/config"
	"github.com/saralchem/orderdesk/internal/logger"
	"github.com/saralchem/orderdesk/internal/models"
	"github.com/saralchem/orderdesk/internal/queue"
	"github.com/saralchem/orderdesk/internal/repository"
	"github.com/saralchem/orderdesk/internal/service"
)

// Container wires repositories and services together.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	StaffRepo        repository.StaffRepository
	CustomerRepo     repository.CustomerRepository
	OrderRepo        repository.OrderRepository
	ProductRepo      repository.ProductRepository
	CategoryRepo     repository.CategoryRepository
	NotificationRepo repository.NotificationRepository

	// Services
	AuthzService        *authz.Service
	AuthService         *service.AuthService
	CaptchaService      *service.CaptchaService
	OrderService        *service.OrderService
	ProductService      *service.ProductService
	CategoryService     *service.CategoryService
	CustomerService     *service.CustomerService
	NotificationService *service.NotificationService
	UploadService       *service.UploadService
}

// NewContainer builds the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.StaffRepo = repository.NewStaffRepository(db)
	c.CustomerRepo = repository.NewCustomerRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.NotificationRepo = repository.NewNotificationRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.AuthService = service.NewAuthService(c.Config, c.StaffRepo)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.OrderService = service.NewOrderService(models.DB, c.OrderRepo, c.ProductRepo, c.CustomerRepo, c.QueueClient)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo, c.ProductRepo)
	c.CustomerService = service.NewCustomerService(c.CustomerRepo)
	c.NotificationService = service.NewNotificationService(c.NotificationRepo)
	c.UploadService = service.NewUploadService(c.Config)
}

// Close releases held resources.
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Warnw("provider_close_queue_client_failed", "error", err)
		}
	}
}
