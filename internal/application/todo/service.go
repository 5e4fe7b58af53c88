package todo

import (
	"context"
	"errors"
	"log/slog"

	domainTodo "github.com/listkeeper/backend/internal/domain/todo"
	"github.com/listkeeper/backend/internal/infrastructure/log"
)

// Service 待办清单应用服务（用例编排）
type Service struct {
	repo   domainTodo.Repository
	pusher Pusher
	logger *slog.Logger
}

// NewService 创建应用服务
func NewService(repo domainTodo.Repository, pusher Pusher) *Service {
	if pusher == nil {
		pusher = NopPusher{}
	}
	return &Service{
		repo:   repo,
		pusher: pusher,
		logger: log.NewModuleLogger("todo", "service"),
	}
}

// Lists 获取所有清单
func (s *Service) Lists(ctx context.Context) ([]*domainTodo.List, error) {
	lists, err := s.repo.FindAllLists(ctx)
	if err != nil {
		s.logFailure(ctx, "API: Error querying database", err)
		return nil, err
	}
	return lists, nil
}

// Items 获取所有事项
func (s *Service) Items(ctx context.Context) ([]*domainTodo.Item, error) {
	items, err := s.repo.FindAllItems(ctx)
	if err != nil {
		s.logFailure(ctx, "API: Error querying database", err)
		return nil, err
	}
	return items, nil
}

// DisplayRows 获取展示用的 JOIN 数据
func (s *Service) DisplayRows(ctx context.Context) ([]*domainTodo.DisplayRow, error) {
	rows, err := s.repo.FindDisplayRows(ctx)
	if err != nil {
		s.logFailure(ctx, "API: Error querying database", err)
		return nil, err
	}
	return rows, nil
}

// Grouped 获取按清单分组的展示数据
func (s *Service) Grouped(ctx context.Context) ([]domainTodo.ListView, error) {
	rows, err := s.DisplayRows(ctx)
	if err != nil {
		return nil, err
	}
	return domainTodo.GroupDisplayRows(rows), nil
}

// AddList 创建清单
func (s *Service) AddList(ctx context.Context, listName string) error {
	if listName == "" {
		s.logger.Info("API: Missing list name.")
		return domainTodo.ErrMissingListName
	}
	ctx = log.WithListName(ctx, listName)

	if err := s.repo.CreateList(ctx, listName); err != nil {
		s.logFailure(ctx, "API: Error adding list", err)
		return err
	}

	s.publish(ctx, domainTodo.NewChangeEvent(domainTodo.ListAdded, listName, ""))
	return nil
}

// AddItem 在清单下创建事项
func (s *Service) AddItem(ctx context.Context, listName, itemName string) error {
	if err := requireNames(listName, itemName); err != nil {
		s.logger.Info("API: Missing list or item name.")
		return err
	}
	ctx = log.WithItemName(log.WithListName(ctx, listName), itemName)

	if err := s.repo.CreateItem(ctx, listName, itemName); err != nil {
		s.logFailure(ctx, "API: Error adding item", err)
		return err
	}

	s.publish(ctx, domainTodo.NewChangeEvent(domainTodo.ItemAdded, listName, itemName))
	return nil
}

// ToggleItem 切换事项完成状态
func (s *Service) ToggleItem(ctx context.Context, listName, itemName string) error {
	if err := requireNames(listName, itemName); err != nil {
		s.logger.Info("API: Missing list or item name.")
		return err
	}
	ctx = log.WithItemName(log.WithListName(ctx, listName), itemName)

	if err := s.repo.ToggleItem(ctx, listName, itemName); err != nil {
		s.logFailure(ctx, "API: Error toggling item in database", err)
		return err
	}

	s.publish(ctx, domainTodo.NewChangeEvent(domainTodo.ItemToggled, listName, itemName))
	return nil
}

// DeleteItem 删除事项
func (s *Service) DeleteItem(ctx context.Context, listName, itemName string) error {
	if err := requireNames(listName, itemName); err != nil {
		s.logger.Info("API: Missing list or item name.")
		return err
	}
	ctx = log.WithItemName(log.WithListName(ctx, listName), itemName)

	if err := s.repo.DeleteItem(ctx, listName, itemName); err != nil {
		s.logFailure(ctx, "API: Error deleting item from database", err)
		return err
	}

	s.publish(ctx, domainTodo.NewChangeEvent(domainTodo.ItemDeleted, listName, itemName))
	return nil
}

// DeleteList 删除清单及其事项
func (s *Service) DeleteList(ctx context.Context, listName string) error {
	if listName == "" {
		s.logger.Info("API: Missing list name.")
		return domainTodo.ErrMissingListName
	}
	ctx = log.WithListName(ctx, listName)

	if err := s.repo.DeleteList(ctx, listName); err != nil {
		s.logFailure(ctx, "API: Error deleting list from database", err)
		return err
	}

	s.publish(ctx, domainTodo.NewChangeEvent(domainTodo.ListDeleted, listName, ""))
	return nil
}

func requireNames(listName, itemName string) error {
	if listName == "" {
		return domainTodo.ErrMissingListName
	}
	if itemName == "" {
		return domainTodo.ErrMissingItemName
	}
	return nil
}

// publish 推送变更事件，失败只记录日志不影响请求结果
func (s *Service) publish(ctx context.Context, event *domainTodo.ChangeEvent) {
	if err := s.pusher.PushChange(event); err != nil {
		log.FromContext(ctx, s.logger).Warn("Failed to push change event",
			"type", event.Type,
			"error", err,
		)
	}
}

// logFailure 按错误类别选择日志级别
func (s *Service) logFailure(ctx context.Context, msg string, err error) {
	logger := log.FromContext(ctx, s.logger)

	var storageErr *domainTodo.StorageError
	if errors.As(err, &storageErr) {
		logger.Error(msg, "op", storageErr.Op, "error", err)
		return
	}
	logger.Info(msg, "error", err)
}
