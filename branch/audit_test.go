// Copyright (c) 2026 Starbound Labs
//
// github.com:starboundlabs/astrohash/branch/audit_test.go

package branch

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"testing"
)

// TestTableMatchesAuditFile checks the generated dispatch table in
// table_data.go against the independently extracted reference vector file in
// testdata/branch_table.json, as required by the branch table's correctness
// policy: the table must be auditable against a reference vector file.
func TestTableMatchesAuditFile(t *testing.T) {
	raw, err := os.ReadFile("testdata/branch_table.json")
	if err != nil {
		t.Fatalf("reading audit file: %v", err)
	}
	var audit map[string][]string
	if err := json.Unmarshal(raw, &audit); err != nil {
		t.Fatalf("parsing audit file: %v", err)
	}

	names := map[string]opCode{
		"NOT": opNOT, "XORP": opXORP, "ANDP": opANDP, "ADD": opADD,
		"SUB97": opSUB97, "MUL": opMUL, "SHL3": opSHL3, "SHR3": opSHR3,
		"ROTL1": opROTL1, "ROTL3": opROTL3, "ROTL5": opROTL5, "ROTLT": opROTLT,
		"REV": opREV, "XORPOP": opXORPOP, "XORROT2": opXORROT2, "XORROT4": opXORROT4,
	}

	expanded := make(map[int][4]opCode, NumEntries)
	for key, ops := range audit {
		var entry [4]opCode
		for i, name := range ops {
			code, ok := names[name]
			if !ok {
				t.Fatalf("audit file: unknown operator name %q", name)
			}
			entry[i] = code
		}
		for _, part := range strings.Split(key, "|") {
			idx, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				t.Fatalf("audit file: bad branch key %q: %v", key, err)
			}
			expanded[idx] = entry
		}
	}

	if len(expanded) != NumEntries {
		t.Fatalf("audit file covers %d branches, want %d", len(expanded), NumEntries)
	}
	for i := 0; i < NumEntries; i++ {
		want, ok := expanded[i]
		if !ok {
			t.Fatalf("audit file missing branch %d", i)
		}
		if table[i] != want {
			t.Fatalf("branch %d: table has %v, audit file has %v", i, table[i], want)
		}
	}
}
