package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"portview/internal/core"
	"portview/internal/types"
)

// TxError joins each port's transmit error status from the state store
// with its statistics from the application store.
func (s Service) TxError(ctx context.Context, req TxErrorRequest) (TxErrorResult, error) {
	name, err := s.ResolveInterfaceName(ctx, req.Interface)
	if err != nil {
		return TxErrorResult{}, err
	}

	state, err := s.Stores.Connect(ctx, "", types.DatabaseState)
	if err != nil {
		return TxErrorResult{}, err
	}
	appl, err := s.Stores.Connect(ctx, "", types.DatabaseAppl)
	if err != nil {
		return TxErrorResult{}, err
	}

	keys, err := state.Enumerate(ctx, txErrStateKeyPrefix+"*")
	if err != nil {
		return TxErrorResult{}, err
	}

	var rows []types.TxErrorEntry
	for _, key := range keys {
		port := strings.TrimPrefix(key, txErrStateKeyPrefix)
		if name != "" && port != name {
			continue
		}
		status, _, err := state.GetField(ctx, key, "tx_status")
		if err != nil {
			return TxErrorResult{}, err
		}
		record, err := appl.GetRecord(ctx, txErrApplKeyPrefix+port)
		if err != nil {
			return TxErrorResult{}, err
		}
		rows = append(rows, types.TxErrorEntry{
			Port:       port,
			Status:     status,
			Statistics: record["statistics"],
		})
	}
	if name != "" && len(rows) == 0 {
		return TxErrorResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("interface %s does not exist", name))
	}

	sortTxErrorRows(rows)
	return TxErrorResult{Rows: rows}, nil
}

func sortTxErrorRows(rows []types.TxErrorEntry) {
	names := make([]string, 0, len(rows))
	byName := make(map[string]types.TxErrorEntry, len(rows))
	for _, row := range rows {
		names = append(names, row.Port)
		byName[row.Port] = row
	}
	core.SortNatural(names)
	for i, name := range names {
		rows[i] = byName[name]
	}
}
