package lower

import "testing"

func TestMangleJoinsLayoutAndPath(t *testing.T) {
	got := mangle("eth", "src")
	if got != "eth_src" {
		t.Fatalf("mangle(eth, src) = %q, want eth_src", got)
	}
}

func TestMangleFlattensDottedPaths(t *testing.T) {
	got := mangle("ipv4", "hdr.ttl")
	if got != "ipv4_hdr_ttl" {
		t.Fatalf("mangle(ipv4, hdr.ttl) = %q, want ipv4_hdr_ttl", got)
	}
}

func TestMangleAliasIsIdentity(t *testing.T) {
	got := mangleAlias("saddr")
	if got != "saddr" {
		t.Fatalf("mangleAlias(saddr) = %q, want saddr", got)
	}
}
