// Package mapper holds small generic helpers shared by the persistence
// mappers.
package mapper

// MapSlicePtr maps a slice of pointers through mapFunc, skipping nil input
// elements. A nil input slice maps to nil.
func MapSlicePtr[T any, R any](items []*T, mapFunc func(*T) *R) []*R {
	if items == nil {
		return nil
	}
	result := make([]*R, 0, len(items))
	for _, item := range items {
		if item != nil {
			result = append(result, mapFunc(item))
		}
	}
	return result
}
