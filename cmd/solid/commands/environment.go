package commands

import (
	"context"
	stdErrors "errors"

	_ "modernc.org/sqlite"

	"gosolid/config"
	"gosolid/data/db"
	"gosolid/data/db/basic"
	"gosolid/errors"
	"gosolid/logging"
	"gosolid/messaging"
	"gosolid/messaging/transport/natsjetstream"
	"gosolid/messaging/transport/redisstreams"
	msync "gosolid/messaging/transport/sync"
	"gosolid/principles/isp"
)

// environment 按需构建演示所需的基础设施，并在结束时统一释放
type environment struct {
	cfg     config.Config
	logger  logging.Logger
	line    messaging.IPublisher
	db      db.IDatabase
	closers []func() error
}

func newEnvironment(cfg config.Config) *environment {
	return &environment{cfg: cfg, logger: logging.ComponentLogger("solid")}
}

// faxLine 返回配置的传真线路，首次调用时建立连接
func (e *environment) faxLine(ctx context.Context) (messaging.IPublisher, error) {
	if e.line != nil {
		return e.line, nil
	}

	fax := e.cfg.Fax
	var (
		line messaging.IPublisher
		err  error
	)
	switch fax.Transport {
	case config.TransportRedis:
		line, err = redisstreams.NewPublisher(redisstreams.Config{
			Addr:         fax.Redis.Addr,
			Username:     fax.Redis.Username,
			Password:     fax.Redis.Password,
			DB:           fax.Redis.DB,
			StreamPrefix: fax.Redis.StreamPrefix,
			MaxLen:       fax.Redis.MaxLen,
			Logger:       e.logger,
		})
	case config.TransportNATS:
		line, err = natsjetstream.NewPublisher(natsjetstream.Config{
			URL:           fax.NATS.URL,
			Stream:        fax.NATS.Stream,
			SubjectPrefix: fax.NATS.SubjectPrefix,
			Logger:        e.logger,
		})
	default:
		line, err = e.syncLine(ctx)
	}
	if err != nil {
		return nil, err
	}

	e.line = line
	e.closers = append(e.closers, e.lineCloser(ctx, line))
	e.logger.Debug(ctx, "fax line ready", logging.String("transport", fax.Transport))
	return line, nil
}

// syncLine 进程内线路：接收方只记录日志
func (e *environment) syncLine(ctx context.Context) (messaging.IPublisher, error) {
	t := msync.NewSyncTransport()
	if err := t.Start(ctx); err != nil {
		return nil, errors.WrapError(err, errors.ErrCodeQueue, "start sync transport")
	}
	receiver := messaging.HandlerFunc(func(ctx context.Context, m messaging.IMessage) error {
		e.logger.Info(ctx, "fax received",
			logging.String("message_id", m.GetID()),
			logging.Any("title", m.GetMetadata()["title"]))
		return nil
	})
	if err := t.Subscribe(isp.FaxMessageType, receiver); err != nil {
		_ = t.Close()
		return nil, errors.WrapError(err, errors.ErrCodeQueue, "subscribe fax receiver")
	}
	return t, nil
}

// lineCloser 进程内线路关闭前记录收发统计
func (e *environment) lineCloser(ctx context.Context, line messaging.IPublisher) func() error {
	t, ok := line.(messaging.Transport)
	if !ok {
		return line.Close
	}
	return func() error {
		stats := t.Stats()
		e.logger.Info(ctx, "fax line closed",
			logging.Any("published", stats.Published),
			logging.Int("handler_count", stats.HandlerCount),
			logging.Any("message_types", stats.MessageTypes))
		return t.Close()
	}
}

// database 关系存储为 sqlite 时打开数据库，memory 时返回 nil
func (e *environment) database() (db.IDatabase, error) {
	if e.cfg.Relationships.Store != config.StoreSQLite {
		return nil, nil
	}
	if e.db != nil {
		return e.db, nil
	}
	database, err := basic.New(e.cfg.DBConfig())
	if err != nil {
		return nil, err
	}
	e.db = database
	e.closers = append(e.closers, database.Close)
	return database, nil
}

// Close 逆序释放资源
func (e *environment) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	e.closers = nil
	return stdErrors.Join(errs...)
}
