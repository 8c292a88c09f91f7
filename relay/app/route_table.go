package app

import "fmt"
import "regexp"
import "net/url"

import "github.com/relaysh/relay.api/relay/routing"

// TableEntry pairs a compiled route pattern with the factory created from the mounted route.
type TableEntry[S any] struct {
	Pattern *regexp.Regexp
	Factory *routing.RouteFactory[S]
}

// RouteTable is the application's registry of mounted routes; entries are consulted in mount order.
type RouteTable[S any] []TableEntry[S]

// Mount compiles the route's pattern and converts the route into the factory held by the table.
func (table *RouteTable[S]) Mount(route *routing.Route[S]) error {
	pattern, e := regexp.Compile(route.Path())

	if e != nil {
		return e
	}

	*table = append(*table, TableEntry[S]{pattern, route.Create()})
	return nil
}

// Match returns the factory of the first mounted route whose pattern matches the provided path and
// whose method set accepts the provided method, along with any values captured by the pattern.
func (table RouteTable[S]) Match(method string, path string) (bool, url.Values, *routing.RouteFactory[S]) {
	pbytes := []byte(path)

	for _, entry := range table {
		if match := entry.Pattern.Match(pbytes); match != true || !entry.Factory.Accepts(method) {
			continue
		}

		if s := entry.Pattern.NumSubexp(); s == 0 {
			return true, make(url.Values), entry.Factory
		}

		groups := entry.Pattern.FindAllStringSubmatch(path, -1)

		if groups == nil || len(groups) != 1 {
			return true, make(url.Values), entry.Factory
		}

		values, names := groups[0][1:], entry.Pattern.SubexpNames()[1:]
		params, count := make(url.Values), len(names)

		for indx, v := range values {
			if indx < count && len(names[indx]) >= 1 {
				params.Set(names[indx], v)
				continue
			}

			params.Set(fmt.Sprintf("$%d", indx), v)
		}

		return true, params, entry.Factory
	}

	return false, make(url.Values), nil
}
