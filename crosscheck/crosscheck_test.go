package crosscheck_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/sarchlab/a64dis/crosscheck"
	"github.com/sarchlab/a64dis/insts"
)

func TestCrosscheck(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Crosscheck Suite")
}

var _ = Describe("Result", func() {
	It("should agree on the same mnemonic", func() {
		r := crosscheck.Result{
			Ours: "add x0, x1, #0x2a", OursValid: true,
			Theirs: "add x0, x1, #0x2a", TheirsValid: true,
		}
		Expect(r.Agree()).To(BeTrue())
	})

	It("should ignore operand formatting", func() {
		r := crosscheck.Result{
			Ours: "ldr x0, [x1, #8]", OursValid: true,
			Theirs: "LDR X0, [X1,#8]", TheirsValid: true,
		}
		Expect(r.TheirsMnemonic()).To(Equal("ldr"))
		Expect(r.Agree()).To(BeTrue())
	})

	It("should agree when both reject", func() {
		r := crosscheck.Result{Ours: ".inst 0xffffffff"}
		Expect(r.Agree()).To(BeTrue())
	})

	It("should disagree when only one side accepts", func() {
		r := crosscheck.Result{Ours: ".inst 0x00000000", Theirs: "udf #0", TheirsValid: true}
		Expect(r.Agree()).To(BeFalse())
		Expect(r.String()).To(ContainSubstring("udf #0"))
	})

	It("should disagree on different mnemonics", func() {
		r := crosscheck.Result{
			Ours: "mov x0, x1", OursValid: true,
			Theirs: "orr x0, xzr, x1", TheirsValid: true,
		}
		Expect(r.Agree()).To(BeFalse())
	})
})

var _ = Describe("Checker", func() {
	var checker *crosscheck.Checker

	BeforeEach(func() {
		logger, _ := test.NewNullLogger()
		checker = crosscheck.New(insts.NewDecoder(), logger)
	})

	// ADD X0, X1, #42 -> 0x9100A820
	It("should agree on ADD", func() {
		r := checker.Check(0x9100A820, 0)

		Expect(r.OursValid).To(BeTrue())
		Expect(r.TheirsValid).To(BeTrue())
		Expect(r.TheirsMnemonic()).To(Equal("add"))
		Expect(r.Agree()).To(BeTrue())
	})

	// NOP -> 0xD503201F
	It("should agree on NOP", func() {
		Expect(checker.Check(0xD503201F, 0).Agree()).To(BeTrue())
	})

	It("should count a batch", func() {
		report := checker.CheckWords(0x1000, []uint32{0x9100A820, 0xD503201F})

		Expect(report.Checked).To(Equal(2))
		Expect(report.Agreed).To(Equal(2))
		Expect(report.Disagreements).To(BeEmpty())
		Expect(report.ByMnemonic()).To(BeEmpty())
	})
})

var _ = Describe("CheckAll", func() {
	It("should check scattered words in one report", func() {
		logger, hook := test.NewNullLogger()
		checker := crosscheck.New(insts.NewDecoder(), logger)

		report := checker.CheckAll([]crosscheck.Word{
			{PC: 0x1000, Word: 0x9100A820}, // add x0, x1, #0x2a
			{PC: 0x2000, Word: 0xD503201F}, // nop
			{PC: 0x3000, Word: 0xD65F03C0}, // ret
		})

		Expect(report.Checked).To(Equal(3))
		Expect(report.Agreed).To(Equal(3))
		Expect(hook.Entries).To(BeEmpty())
	})
})

var _ = Describe("Report", func() {
	It("should group disagreements by mnemonic", func() {
		report := crosscheck.Report{Disagreements: []crosscheck.Result{
			{Word: 1, Ours: "mov x0, x1", OursValid: true},
			{Word: 2, Ours: "mov x2, x3", OursValid: true},
			{Word: 3, Ours: "cset w0, eq", OursValid: true},
		}}

		groups := report.ByMnemonic()
		Expect(groups).To(HaveLen(2))
		Expect(groups["mov"]).To(HaveLen(2))
		Expect(groups["cset"]).To(HaveLen(1))
	})
})
