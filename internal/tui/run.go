package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/listkeeper/backend/internal/client"
	"github.com/listkeeper/backend/internal/domain/todo"
)

// Options TUI 启动选项
type Options struct {
	// Watch 订阅 /ws，其他客户端修改数据时自动刷新
	Watch bool
}

// Run 启动 TUI，直到用户退出
func Run(ctx context.Context, c *client.Client, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewModel(c), tea.WithAltScreen(), tea.WithContext(ctx))

	if opts.Watch {
		go func() {
			// 推送不可用时仍可手动刷新
			_ = c.Watch(ctx, func(e *todo.ChangeEvent) {
				p.Send(ChangeMsg{Event: e})
			})
		}()
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
