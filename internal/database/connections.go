// internal/database/connections.go
// Manages the MySQL, MongoDB and Redis connections used by the service

package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connections holds all database connections used by the application
type Connections struct {
	MySQL   *sql.DB
	MongoDB *mongo.Database
	Redis   *redis.Client
	logger  *log.Logger
}

// Config holds connection parameters for all data stores
type Config struct {
	MySQL   MySQLConfig
	MongoDB MongoConfig
	Redis   RedisConfig
}

// MySQLConfig contains MySQL connection parameters
type MySQLConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// MongoConfig contains MongoDB connection parameters
type MongoConfig struct {
	URI      string
	Database string
}

// RedisConfig contains Redis connection parameters
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Connect establishes and verifies all database connections
func Connect(ctx context.Context, cfg Config, logger *log.Logger) (*Connections, error) {
	conn := &Connections{logger: logger}

	if err := conn.connectMySQL(ctx, cfg.MySQL); err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}

	if err := conn.connectMongo(ctx, cfg.MongoDB); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := conn.connectRedis(ctx, cfg.Redis); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Println("all database connections established")
	return conn, nil
}

// connectMySQL opens the MySQL pool with retry, since the database may still
// be starting when the service comes up.
func (c *Connections) connectMySQL(ctx context.Context, cfg MySQLConfig) error {
	var err error
	const maxAttempts = 5

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		c.MySQL, err = sql.Open("mysql", cfg.DSN)
		if err == nil {
			c.MySQL.SetMaxOpenConns(cfg.MaxOpenConns)
			c.MySQL.SetMaxIdleConns(cfg.MaxIdleConns)
			c.MySQL.SetConnMaxLifetime(cfg.ConnMaxLifetime)

			if err = c.MySQL.PingContext(ctx); err == nil {
				c.logger.Println("MySQL connection established")
				return nil
			}
		}

		c.logger.Printf("MySQL not ready (attempt %d/%d): %v", attempt, maxAttempts, err)
		time.Sleep(time.Second * time.Duration(attempt))
	}

	return fmt.Errorf("gave up after %d attempts: %w", maxAttempts, err)
}

func (c *Connections) connectMongo(ctx context.Context, cfg MongoConfig) error {
	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	c.MongoDB = client.Database(cfg.Database)
	c.logger.Println("MongoDB connection established")
	return nil
}

func (c *Connections) connectRedis(ctx context.Context, cfg RedisConfig) error {
	c.Redis = redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := c.Redis.Ping(ctx).Err(); err != nil {
		return err
	}

	c.logger.Println("Redis connection established")
	return nil
}

// Close gracefully closes all database connections
func (c *Connections) Close() {
	if c.MySQL != nil {
		if err := c.MySQL.Close(); err != nil {
			c.logger.Printf("error closing MySQL connection: %v", err)
		}
	}

	if c.MongoDB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.MongoDB.Client().Disconnect(ctx); err != nil {
			c.logger.Printf("error closing MongoDB connection: %v", err)
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Printf("error closing Redis connection: %v", err)
		}
	}
}

// HealthCheck verifies all database connections are healthy
func (c *Connections) HealthCheck(ctx context.Context) error {
	if err := c.MySQL.PingContext(ctx); err != nil {
		return fmt.Errorf("MySQL health check failed: %w", err)
	}
	if err := c.MongoDB.Client().Ping(ctx, nil); err != nil {
		return fmt.Errorf("MongoDB health check failed: %w", err)
	}
	if err := c.Redis.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis health check failed: %w", err)
	}
	return nil
}
