// Package tui 终端界面：浏览清单，增删改后整体刷新
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/listkeeper/backend/internal/domain/todo"
)

const requestTimeout = 10 * time.Second

// API TUI 依赖的接口，*client.Client 实现了它
type API interface {
	Grouped(ctx context.Context) ([]todo.ListView, error)
	AddList(ctx context.Context, listName string) (string, error)
	AddItem(ctx context.Context, listName, itemName string) (string, error)
	ToggleItem(ctx context.Context, listName, itemName string) (string, error)
	DeleteItem(ctx context.Context, listName, itemName string) (string, error)
	DeleteList(ctx context.Context, listName string) (string, error)
}

type inputMode int

const (
	modeBrowse inputMode = iota
	modeAddList
	modeAddItem
)

// --- 消息 ---

type refreshedMsg struct{ views []todo.ListView }

type fetchFailedMsg struct{ err error }

type mutationDoneMsg struct{ action Action }

type mutationFailedMsg struct {
	action Action
	err    error
}

// ChangeMsg 服务端推送了变更，需要刷新
type ChangeMsg struct{ Event *todo.ChangeEvent }

type keyMap struct {
	Up, Down, NewList, AddItem, Toggle, Delete, Refresh, Quit key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	NewList: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new list")),
	AddItem: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
	Toggle:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
	Delete:  key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model bubbletea 模型
type Model struct {
	api    API
	store  Store
	mode   inputMode
	target string // 添加事项的目标清单
	ti     textinput.Model
}

// NewModel 创建模型
func NewModel(api API) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 255

	return Model{
		api:   api,
		store: Store{Cursor: Cursor{Item: -1}, Loading: true},
		ti:    ti,
	}
}

// Store 当前状态
func (m Model) Store() Store {
	return m.store
}

// Init 启动时拉取一次数据
func (m Model) Init() tea.Cmd {
	return m.fetch()
}

// Update 处理消息
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshedMsg:
		m.store = m.store.Refreshed(msg.views)
		return m, nil
	case fetchFailedMsg:
		m.store = m.store.FetchFailed(msg.err)
		return m, nil
	case mutationDoneMsg:
		// 不做本地乐观更新，成功后整体刷新
		return m, m.fetch()
	case mutationFailedMsg:
		m.store = m.store.Failed(msg.action.Kind, msg.err)
		return m, nil
	case ChangeMsg:
		return m, m.fetch()
	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case msg.Type == tea.KeyEsc:
		m.store = m.store.Dismiss()
	case key.Matches(msg, keys.Up):
		m.store = m.store.Move(-1)
	case key.Matches(msg, keys.Down):
		m.store = m.store.Move(1)
	case key.Matches(msg, keys.Refresh):
		return m, m.fetch()
	case key.Matches(msg, keys.NewList):
		m.mode = modeAddList
		m.ti.Placeholder = "New list name..."
		m.ti.SetValue("")
		return m, m.ti.Focus()
	case key.Matches(msg, keys.AddItem):
		listName, _, ok := m.store.Selected()
		if !ok {
			return m, nil
		}
		m.mode = modeAddItem
		m.target = listName
		m.ti.Placeholder = "New item for " + listName + "..."
		m.ti.SetValue("")
		return m, m.ti.Focus()
	case key.Matches(msg, keys.Toggle):
		listName, itemName, ok := m.store.Selected()
		if !ok || itemName == "" {
			return m, nil
		}
		return m.dispatch(Action{Kind: ToggleItem, ListName: listName, ItemName: itemName})
	case key.Matches(msg, keys.Delete):
		listName, itemName, ok := m.store.Selected()
		if !ok {
			return m, nil
		}
		if itemName == "" {
			return m.dispatch(Action{Kind: DeleteList, ListName: listName})
		}
		return m.dispatch(Action{Kind: DeleteItem, ListName: listName, ItemName: itemName})
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeInput()
		return m, nil
	case tea.KeyEnter:
		var action Action
		if m.mode == modeAddList {
			action = Action{Kind: AddList, ListName: m.ti.Value()}
		} else {
			action = Action{Kind: AddItem, ListName: m.target, ItemName: m.ti.Value()}
		}
		if err := action.Validate(); err != nil {
			// 保持输入框打开，便于修改
			m.store = m.store.Rejected(err)
			return m, nil
		}
		m.closeInput()
		return m.dispatch(action)
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.mode = modeBrowse
	m.target = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

// dispatch 发出请求
func (m Model) dispatch(action Action) (tea.Model, tea.Cmd) {
	if err := action.Validate(); err != nil {
		m.store = m.store.Rejected(err)
		return m, nil
	}
	m.store = m.store.Dismiss()
	m.store.Loading = true
	return m, m.perform(action)
}

func (m Model) perform(action Action) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var err error
		switch action.Kind {
		case AddList:
			_, err = api.AddList(ctx, action.ListName)
		case AddItem:
			_, err = api.AddItem(ctx, action.ListName, action.ItemName)
		case ToggleItem:
			_, err = api.ToggleItem(ctx, action.ListName, action.ItemName)
		case DeleteItem:
			_, err = api.DeleteItem(ctx, action.ListName, action.ItemName)
		case DeleteList:
			_, err = api.DeleteList(ctx, action.ListName)
		default:
			err = fmt.Errorf("unknown action %d", action.Kind)
		}
		if err != nil {
			return mutationFailedMsg{action: action, err: err}
		}
		return mutationDoneMsg{action: action}
	}
}

func (m Model) fetch() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		views, err := api.Grouped(ctx)
		if err != nil {
			return fetchFailedMsg{err: err}
		}
		return refreshedMsg{views: views}
	}
}

// View 渲染界面
func (m Model) View() string {
	var b strings.Builder

	done, pending := 0, 0
	for _, l := range m.store.Lists {
		d, p := l.Stats()
		done += d
		pending += p
	}
	fmt.Fprintf(&b, "%s   %s %d  %s %d\n\n",
		titleStyle.Render("To-Do Lists"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), pending,
	)

	if len(m.store.Lists) == 0 {
		if m.store.Loading {
			b.WriteString(mutedStyle.Render("Loading...") + "\n")
		} else {
			b.WriteString(mutedStyle.Render("No lists yet. Press n to create one.") + "\n")
		}
	}

	for li, list := range m.store.Lists {
		header := listStyle.Render(list.Name)
		b.WriteString(m.prefix(Cursor{List: li, Item: -1}) + header + "\n")

		for ii, item := range list.Items {
			box, text := mutedStyle.Render(boxUnchecked), item.Name
			if item.Completed {
				box, text = successStyle.Render(boxChecked), doneStyle.Render(item.Name)
			}
			b.WriteString(m.prefix(Cursor{List: li, Item: ii}) + "  " + box + " " + text + "\n")
		}
	}

	if m.mode != modeBrowse {
		title := "New list"
		if m.mode == modeAddItem {
			title = "Add item to " + m.target
		}
		b.WriteString("\n" + panelStyle.Render(title+"\n"+m.ti.View()) + "\n")
	}

	if m.store.Alert != "" {
		b.WriteString("\n" + alertStyle.Render(m.store.Alert) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("↑/↓ move • n new list • a add item • space toggle • d delete • r refresh • q quit"))
	return panelStyle.Render(b.String())
}

func (m Model) prefix(c Cursor) string {
	if m.mode == modeBrowse && m.store.Cursor == c {
		return selectedStyle.Render(">") + " "
	}
	return "  "
}
