package pair_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPair(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Pair Suite")
}
