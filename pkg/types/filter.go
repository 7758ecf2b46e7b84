package types

// Filter: параметры выборки списка. Ключи совпадают с именами колонок внешних ключей (area_id, sub_area_id).
type Filter struct {
	Filter map[string]string `json:"filter,omitempty"`
}

func NewFilter(pairs map[string]string) Filter {
	return Filter{Filter: pairs}
}

func (f Filter) Get(key string) string {
	if f.Filter == nil {
		return ""
	}
	return f.Filter[key]
}

// http://localhost:8086/api/region/branches?area_id=...&sub_area_id=...
