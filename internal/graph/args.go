package graph

// stringArg reports whether the argument was supplied in the operation,
// which is what distinguishes a sparse-patch assignment from an omission.
func stringArg(args map[string]interface{}, key string) (string, bool) {
	v, ok := args[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func stringListArg(args map[string]interface{}, key string) ([]string, bool) {
	v, ok := args[key]
	if !ok {
		return nil, false
	}
	raw, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}
