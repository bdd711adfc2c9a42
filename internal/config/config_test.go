package config

import "testing"

func TestGetEnvDefault(t *testing.T) {
	t.Setenv("PELISRANK_TEST_KEY", "")
	if got := getEnv("PELISRANK_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("getEnv = %q, esperaba fallback", got)
	}

	t.Setenv("PELISRANK_TEST_KEY", "valor")
	if got := getEnv("PELISRANK_TEST_KEY", "fallback"); got != "valor" {
		t.Fatalf("getEnv = %q, esperaba valor", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("PELISRANK_TEST_INT", "7")
	if got := getEnvInt("PELISRANK_TEST_INT", 1); got != 7 {
		t.Fatalf("getEnvInt = %d, esperaba 7", got)
	}

	t.Setenv("PELISRANK_TEST_INT", "no-es-numero")
	if got := getEnvInt("PELISRANK_TEST_INT", 5); got != 5 {
		t.Fatalf("getEnvInt con valor inválido = %d, esperaba 5", got)
	}
}

func TestSplitAddrs(t *testing.T) {
	got := splitAddrs(" node1:9001, node2:9001 ,,node3:9001 ")
	want := []string{"node1:9001", "node2:9001", "node3:9001"}
	if len(got) != len(want) {
		t.Fatalf("splitAddrs = %v, esperaba %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("splitAddrs[%d] = %q, esperaba %q", i, got[i], want[i])
		}
	}

	if got := splitAddrs(""); got != nil {
		t.Fatalf("splitAddrs(\"\") = %v, esperaba nil", got)
	}
}
