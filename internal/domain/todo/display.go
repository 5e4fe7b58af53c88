package todo

// ItemView 分组视图中的事项
type ItemView struct {
	Name      string `json:"name" yaml:"name"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// ListView 分组视图中的清单
type ListView struct {
	Name  string     `json:"name" yaml:"name"`
	Items []ItemView `json:"items" yaml:"items"`
}

// GroupDisplayRows 把扁平的 JOIN 行按清单名分组
//
// 清单顺序为首次出现的顺序，清单内事项保持输入行顺序。
// 只有 item_name 与 completed 都非空的行才产生事项，
// 因此没有事项的清单仍然出现，Items 为空切片。
func GroupDisplayRows(rows []*DisplayRow) []ListView {
	views := make([]ListView, 0)
	index := make(map[string]int)

	for _, row := range rows {
		if row == nil {
			continue
		}
		pos, ok := index[row.ListName]
		if !ok {
			pos = len(views)
			index[row.ListName] = pos
			views = append(views, ListView{Name: row.ListName, Items: []ItemView{}})
		}
		if row.HasItem() {
			views[pos].Items = append(views[pos].Items, ItemView{
				Name:      *row.ItemName,
				Completed: *row.Completed,
			})
		}
	}

	return views
}

// Find 按名称查找分组后的清单
func Find(views []ListView, name string) (ListView, bool) {
	for _, v := range views {
		if v.Name == name {
			return v, true
		}
	}
	return ListView{}, false
}

// Stats 统计已完成与未完成事项数
func (v ListView) Stats() (done, pending int) {
	for _, it := range v.Items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
