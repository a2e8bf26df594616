package core

import (
	"context"
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/maruel/natural"
	"github.com/rs/zerolog/log"

	"portview/internal/types"
)

// Record is one port's result from a single namespace fetch.
type Record struct {
	Fields map[string]string
	Class  PortClass
}

// FetchFunc retrieves the records of one namespace, keyed by canonical
// port name. Namespaces are independent read-only stores; the aggregator
// calls this once per enumerated namespace.
type FetchFunc func(ctx context.Context, namespace string) (map[string]Record, error)

// Row is one merged, display-ready result row.
type Row struct {
	Name    string
	Display string
	Fields  map[string]string
}

// AggregateOptions controls one fan-out.
type AggregateOptions struct {
	Scope      NamespaceScope
	Display    types.DisplayScope
	Target     string // canonical name; empty means all ports
	Translator AliasTranslator
}

// Aggregate fans the fetch out across the namespaces selected by the
// scope, merges the results keyed by canonical port name, applies
// visibility filtering unless the display scope is "all", and returns
// rows in natural ascending order of their display identity.
//
// When a target interface is requested, "not found" is decided only
// after every namespace has been queried: the same name may exist in one
// namespace and not another. Any fetch failure is fatal to the whole
// aggregation; no partial merge is produced.
func Aggregate(ctx context.Context, topo types.Topology, fetch FetchFunc, opts AggregateOptions) ([]Row, error) {
	display := opts.Display
	if opts.Target != "" {
		// A named interface is shown regardless of its visibility class.
		display = types.DisplayScopeAll
	}

	merged := map[string]Record{}
	found := false
	for _, ns := range EnumerateNamespaces(opts.Scope, topo) {
		records, err := fetch(ctx, ns)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("cannot connect to namespace %q", ns)).
				WithCause(err)
		}
		log.Debug().Str("namespace", ns).Int("records", len(records)).Msg("namespace fetched")
		for name, record := range records {
			if opts.Target != "" {
				if name != opts.Target {
					continue
				}
				found = true
			}
			if !Visible(record.Class, display) {
				continue
			}
			merged[name] = record
		}
	}

	if opts.Target != "" && !found {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("interface %s does not exist", opts.Target))
	}

	rows := make([]Row, 0, len(merged))
	for name, record := range merged {
		rows = append(rows, Row{
			Name:    name,
			Display: opts.Translator.NameToAlias(name),
			Fields:  record.Fields,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return natural.Less(rows[i].Display, rows[j].Display)
	})
	return rows, nil
}
