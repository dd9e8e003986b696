package locale

// Messages 一个语言包，或合并后的消息映射。
// 值可以是 string、嵌套的 map[string]any 或 []any。
type Messages map[string]any

// Merge 深度合并：base 为底，override 覆盖。
// 两边都是映射时递归合并，两边都是列表时按 base、override 的顺序拼接，其余情况 override 胜出。
// 不修改入参，结果不与入参共享可变的映射或列表。
func Merge(base, override Messages) Messages {
	return Messages(mergeMaps(base, override))
}

func mergeMaps(base, override map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		out[k] = cloneValue(v)
	}
	for k, ov := range override {
		bv, exists := out[k]
		if !exists {
			out[k] = cloneValue(ov)
			continue
		}
		out[k] = mergeValue(bv, ov)
	}
	return out
}

func mergeValue(base, override any) any {
	if bm, ok := asMap(base); ok {
		if om, ok := asMap(override); ok {
			return mergeMaps(bm, om)
		}
	}
	if bl, ok := base.([]any); ok {
		if ol, ok := override.([]any); ok {
			joined := make([]any, 0, len(bl)+len(ol))
			joined = append(joined, bl...)
			for _, v := range ol {
				joined = append(joined, cloneValue(v))
			}
			return joined
		}
	}
	return cloneValue(override)
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Messages:
		return map[string]any(m), true
	}
	return nil, false
}

func cloneValue(v any) any {
	if m, ok := asMap(v); ok {
		out := make(map[string]any, len(m))
		for k, inner := range m {
			out[k] = cloneValue(inner)
		}
		return out
	}
	if l, ok := v.([]any); ok {
		out := make([]any, len(l))
		for i, inner := range l {
			out[i] = cloneValue(inner)
		}
		return out
	}
	return v
}

// Clone 深拷贝
func (m Messages) Clone() Messages {
	if m == nil {
		return nil
	}
	return Messages(cloneValue(map[string]any(m)).(map[string]any))
}

// Lookup 按路径取字符串，例如 Lookup("Home", "title")
func (m Messages) Lookup(path ...string) (string, bool) {
	var cur any = map[string]any(m)
	for _, key := range path {
		mm, ok := asMap(cur)
		if !ok {
			return "", false
		}
		cur, ok = mm[key]
		if !ok {
			return "", false
		}
	}
	s, ok := cur.(string)
	return s, ok
}
