package variants

import "sort"

// VariantOptions reports the declared variant names and, for each, the
// sorted set of declared values. It is a read-only projection intended for
// documentation and validation tooling; resolution never consults it.
func VariantOptions(d Definition) map[string][]string {
	options := make(map[string][]string, len(d.variants))
	for name, values := range d.variants {
		list := make([]string, 0, len(values))
		for value := range values {
			list = append(list, value)
		}
		sort.Strings(list)
		options[name] = list
	}
	return options
}
