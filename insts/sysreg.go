package insts

import "fmt"

// sysRegID packs a system register encoding as op0:op1:CRn:CRm:op2.
func sysRegID(op0, op1, crn, crm, op2 uint32) uint16 {
	return uint16(op0<<14 | op1<<11 | crn<<7 | crm<<3 | op2)
}

var sysRegNames = map[uint16]string{
	sysRegID(2, 0, 0, 2, 2):  "mdscr_el1",
	sysRegID(2, 0, 1, 0, 4):  "oslar_el1",
	sysRegID(2, 0, 1, 1, 4):  "oslsr_el1",
	sysRegID(2, 0, 1, 3, 4):  "osdlr_el1",
	sysRegID(2, 3, 0, 1, 0):  "mdccsr_el0",
	sysRegID(2, 3, 0, 4, 0):  "dbgdtr_el0",
	sysRegID(2, 3, 0, 5, 0):  "dbgdtrrx_el0",
	sysRegID(3, 0, 0, 0, 0):  "midr_el1",
	sysRegID(3, 0, 0, 0, 5):  "mpidr_el1",
	sysRegID(3, 0, 0, 0, 6):  "revidr_el1",
	sysRegID(3, 0, 0, 4, 0):  "id_aa64pfr0_el1",
	sysRegID(3, 0, 0, 4, 1):  "id_aa64pfr1_el1",
	sysRegID(3, 0, 0, 4, 4):  "id_aa64zfr0_el1",
	sysRegID(3, 0, 0, 5, 0):  "id_aa64dfr0_el1",
	sysRegID(3, 0, 0, 5, 1):  "id_aa64dfr1_el1",
	sysRegID(3, 0, 0, 6, 0):  "id_aa64isar0_el1",
	sysRegID(3, 0, 0, 6, 1):  "id_aa64isar1_el1",
	sysRegID(3, 0, 0, 7, 0):  "id_aa64mmfr0_el1",
	sysRegID(3, 0, 0, 7, 1):  "id_aa64mmfr1_el1",
	sysRegID(3, 0, 0, 7, 2):  "id_aa64mmfr2_el1",
	sysRegID(3, 0, 1, 0, 0):  "sctlr_el1",
	sysRegID(3, 0, 1, 0, 1):  "actlr_el1",
	sysRegID(3, 0, 1, 0, 2):  "cpacr_el1",
	sysRegID(3, 0, 2, 0, 0):  "ttbr0_el1",
	sysRegID(3, 0, 2, 0, 1):  "ttbr1_el1",
	sysRegID(3, 0, 2, 0, 2):  "tcr_el1",
	sysRegID(3, 0, 2, 1, 0):  "apiakeylo_el1",
	sysRegID(3, 0, 2, 1, 1):  "apiakeyhi_el1",
	sysRegID(3, 0, 2, 1, 2):  "apibkeylo_el1",
	sysRegID(3, 0, 2, 1, 3):  "apibkeyhi_el1",
	sysRegID(3, 0, 2, 2, 0):  "apdakeylo_el1",
	sysRegID(3, 0, 2, 2, 1):  "apdakeyhi_el1",
	sysRegID(3, 0, 2, 2, 2):  "apdbkeylo_el1",
	sysRegID(3, 0, 2, 2, 3):  "apdbkeyhi_el1",
	sysRegID(3, 0, 2, 3, 0):  "apgakeylo_el1",
	sysRegID(3, 0, 2, 3, 1):  "apgakeyhi_el1",
	sysRegID(3, 0, 4, 0, 0):  "spsr_el1",
	sysRegID(3, 0, 4, 0, 1):  "elr_el1",
	sysRegID(3, 0, 4, 1, 0):  "sp_el0",
	sysRegID(3, 0, 4, 2, 0):  "spsel",
	sysRegID(3, 0, 4, 2, 2):  "currentel",
	sysRegID(3, 0, 4, 2, 3):  "pan",
	sysRegID(3, 0, 4, 2, 4):  "uao",
	sysRegID(3, 0, 5, 1, 0):  "afsr0_el1",
	sysRegID(3, 0, 5, 1, 1):  "afsr1_el1",
	sysRegID(3, 0, 5, 2, 0):  "esr_el1",
	sysRegID(3, 0, 6, 0, 0):  "far_el1",
	sysRegID(3, 0, 7, 4, 0):  "par_el1",
	sysRegID(3, 0, 10, 2, 0): "mair_el1",
	sysRegID(3, 0, 10, 3, 0): "amair_el1",
	sysRegID(3, 0, 12, 0, 0): "vbar_el1",
	sysRegID(3, 0, 12, 1, 0): "isr_el1",
	sysRegID(3, 0, 13, 0, 1): "contextidr_el1",
	sysRegID(3, 0, 13, 0, 4): "tpidr_el1",
	sysRegID(3, 0, 14, 1, 0): "cntkctl_el1",
	sysRegID(3, 1, 0, 0, 0):  "ccsidr_el1",
	sysRegID(3, 1, 0, 0, 1):  "clidr_el1",
	sysRegID(3, 2, 0, 0, 0):  "csselr_el1",
	sysRegID(3, 3, 0, 0, 1):  "ctr_el0",
	sysRegID(3, 3, 0, 0, 7):  "dczid_el0",
	sysRegID(3, 3, 2, 4, 0):  "rndr",
	sysRegID(3, 3, 2, 4, 1):  "rndrrs",
	sysRegID(3, 3, 4, 2, 0):  "nzcv",
	sysRegID(3, 3, 4, 2, 1):  "daif",
	sysRegID(3, 3, 4, 2, 5):  "dit",
	sysRegID(3, 3, 4, 2, 6):  "ssbs",
	sysRegID(3, 3, 4, 2, 7):  "tco",
	sysRegID(3, 3, 4, 4, 0):  "fpcr",
	sysRegID(3, 3, 4, 4, 1):  "fpsr",
	sysRegID(3, 3, 4, 5, 0):  "dspsr_el0",
	sysRegID(3, 3, 4, 5, 1):  "dlr_el0",
	sysRegID(3, 3, 9, 12, 0): "pmcr_el0",
	sysRegID(3, 3, 9, 12, 1): "pmcntenset_el0",
	sysRegID(3, 3, 9, 12, 2): "pmcntenclr_el0",
	sysRegID(3, 3, 9, 13, 0): "pmccntr_el0",
	sysRegID(3, 3, 9, 14, 0): "pmuserenr_el0",
	sysRegID(3, 3, 13, 0, 2): "tpidr_el0",
	sysRegID(3, 3, 13, 0, 3): "tpidrro_el0",
	sysRegID(3, 3, 14, 0, 0): "cntfrq_el0",
	sysRegID(3, 3, 14, 0, 1): "cntpct_el0",
	sysRegID(3, 3, 14, 0, 2): "cntvct_el0",
	sysRegID(3, 3, 14, 2, 0): "cntp_tval_el0",
	sysRegID(3, 3, 14, 2, 1): "cntp_ctl_el0",
	sysRegID(3, 3, 14, 2, 2): "cntp_cval_el0",
	sysRegID(3, 3, 14, 3, 0): "cntv_tval_el0",
	sysRegID(3, 3, 14, 3, 1): "cntv_ctl_el0",
	sysRegID(3, 3, 14, 3, 2): "cntv_cval_el0",
	sysRegID(3, 4, 0, 0, 0):  "vpidr_el2",
	sysRegID(3, 4, 0, 0, 5):  "vmpidr_el2",
	sysRegID(3, 4, 1, 0, 0):  "sctlr_el2",
	sysRegID(3, 4, 1, 1, 0):  "hcr_el2",
	sysRegID(3, 4, 1, 1, 2):  "cptr_el2",
	sysRegID(3, 4, 2, 0, 0):  "ttbr0_el2",
	sysRegID(3, 4, 2, 0, 2):  "tcr_el2",
	sysRegID(3, 4, 2, 1, 0):  "vttbr_el2",
	sysRegID(3, 4, 2, 1, 2):  "vtcr_el2",
	sysRegID(3, 4, 4, 0, 0):  "spsr_el2",
	sysRegID(3, 4, 4, 0, 1):  "elr_el2",
	sysRegID(3, 4, 4, 1, 0):  "sp_el1",
	sysRegID(3, 4, 5, 2, 0):  "esr_el2",
	sysRegID(3, 4, 6, 0, 0):  "far_el2",
	sysRegID(3, 4, 10, 2, 0): "mair_el2",
	sysRegID(3, 4, 12, 0, 0): "vbar_el2",
	sysRegID(3, 4, 13, 0, 2): "tpidr_el2",
	sysRegID(3, 4, 14, 0, 3): "cntvoff_el2",
	sysRegID(3, 4, 14, 1, 0): "cnthctl_el2",
	sysRegID(3, 6, 1, 0, 0):  "sctlr_el3",
	sysRegID(3, 6, 1, 1, 0):  "scr_el3",
	sysRegID(3, 6, 2, 0, 0):  "ttbr0_el3",
	sysRegID(3, 6, 2, 0, 2):  "tcr_el3",
	sysRegID(3, 6, 4, 0, 0):  "spsr_el3",
	sysRegID(3, 6, 4, 0, 1):  "elr_el3",
	sysRegID(3, 6, 4, 1, 0):  "sp_el2",
	sysRegID(3, 6, 5, 2, 0):  "esr_el3",
	sysRegID(3, 6, 6, 0, 0):  "far_el3",
	sysRegID(3, 6, 10, 2, 0): "mair_el3",
	sysRegID(3, 6, 12, 0, 0): "vbar_el3",
}

// SysRegName returns the name of a system register encoded as
// op0:op1:CRn:CRm:op2. Unnamed registers use the generic
// s<op0>_<op1>_c<n>_c<m>_<op2> form.
func SysRegName(id uint16) string {
	if name, ok := sysRegNames[id]; ok {
		return name
	}
	return fmt.Sprintf("s%d_%d_c%d_c%d_%d",
		id>>14&3, id>>11&7, id>>7&0xF, id>>3&0xF, id&7)
}

// sysOp identifies a SYS instruction by op1:CRn:CRm:op2.
func sysOp(op1, crn, crm, op2 uint32) uint16 {
	return uint16(op1<<11 | crn<<7 | crm<<3 | op2)
}

type sysAlias struct {
	op    Op
	name  string
	noReg bool // the operation takes no register
}

var sysAliases = map[uint16]sysAlias{
	sysOp(0, 7, 1, 0): {OpIC, "ialluis", true},
	sysOp(0, 7, 5, 0): {OpIC, "iallu", true},
	sysOp(3, 7, 5, 1): {OpIC, "ivau", false},

	sysOp(3, 7, 4, 1):  {OpDC, "zva", false},
	sysOp(3, 7, 4, 3):  {OpDC, "gva", false},
	sysOp(3, 7, 4, 4):  {OpDC, "gzva", false},
	sysOp(0, 7, 6, 1):  {OpDC, "ivac", false},
	sysOp(0, 7, 6, 2):  {OpDC, "isw", false},
	sysOp(3, 7, 10, 1): {OpDC, "cvac", false},
	sysOp(0, 7, 10, 2): {OpDC, "csw", false},
	sysOp(3, 7, 11, 1): {OpDC, "cvau", false},
	sysOp(3, 7, 12, 1): {OpDC, "cvap", false},
	sysOp(3, 7, 13, 1): {OpDC, "cvadp", false},
	sysOp(3, 7, 14, 1): {OpDC, "civac", false},
	sysOp(0, 7, 14, 2): {OpDC, "cisw", false},
	sysOp(0, 7, 6, 3):  {OpDC, "igvac", false},
	sysOp(0, 7, 6, 4):  {OpDC, "igsw", false},
	sysOp(0, 7, 6, 5):  {OpDC, "igdvac", false},
	sysOp(0, 7, 6, 6):  {OpDC, "igdsw", false},
	sysOp(0, 7, 10, 4): {OpDC, "cgsw", false},
	sysOp(0, 7, 10, 6): {OpDC, "cgdsw", false},
	sysOp(0, 7, 14, 4): {OpDC, "cigsw", false},
	sysOp(0, 7, 14, 6): {OpDC, "cigdsw", false},
	sysOp(3, 7, 10, 3): {OpDC, "cgvac", false},
	sysOp(3, 7, 10, 5): {OpDC, "cgdvac", false},
	sysOp(3, 7, 12, 3): {OpDC, "cgvap", false},
	sysOp(3, 7, 12, 5): {OpDC, "cgdvap", false},
	sysOp(3, 7, 13, 3): {OpDC, "cgvadp", false},
	sysOp(3, 7, 13, 5): {OpDC, "cgdvadp", false},
	sysOp(3, 7, 14, 3): {OpDC, "cigvac", false},
	sysOp(3, 7, 14, 5): {OpDC, "cigdvac", false},

	sysOp(0, 7, 8, 0): {OpAT, "s1e1r", false},
	sysOp(0, 7, 8, 1): {OpAT, "s1e1w", false},
	sysOp(0, 7, 8, 2): {OpAT, "s1e0r", false},
	sysOp(0, 7, 8, 3): {OpAT, "s1e0w", false},
	sysOp(0, 7, 9, 0): {OpAT, "s1e1rp", false},
	sysOp(0, 7, 9, 1): {OpAT, "s1e1wp", false},
	sysOp(4, 7, 8, 0): {OpAT, "s1e2r", false},
	sysOp(4, 7, 8, 1): {OpAT, "s1e2w", false},
	sysOp(4, 7, 8, 4): {OpAT, "s12e1r", false},
	sysOp(4, 7, 8, 5): {OpAT, "s12e1w", false},
	sysOp(4, 7, 8, 6): {OpAT, "s12e0r", false},
	sysOp(4, 7, 8, 7): {OpAT, "s12e0w", false},
	sysOp(6, 7, 8, 0): {OpAT, "s1e3r", false},
	sysOp(6, 7, 8, 1): {OpAT, "s1e3w", false},

	sysOp(0, 8, 3, 0): {OpTLBI, "vmalle1is", true},
	sysOp(0, 8, 3, 1): {OpTLBI, "vae1is", false},
	sysOp(0, 8, 3, 2): {OpTLBI, "aside1is", false},
	sysOp(0, 8, 3, 3): {OpTLBI, "vaae1is", false},
	sysOp(0, 8, 3, 5): {OpTLBI, "vale1is", false},
	sysOp(0, 8, 3, 7): {OpTLBI, "vaale1is", false},
	sysOp(0, 8, 7, 0): {OpTLBI, "vmalle1", true},
	sysOp(0, 8, 7, 1): {OpTLBI, "vae1", false},
	sysOp(0, 8, 7, 2): {OpTLBI, "aside1", false},
	sysOp(0, 8, 7, 3): {OpTLBI, "vaae1", false},
	sysOp(0, 8, 7, 5): {OpTLBI, "vale1", false},
	sysOp(0, 8, 7, 7): {OpTLBI, "vaale1", false},
	sysOp(4, 8, 0, 1): {OpTLBI, "ipas2e1is", false},
	sysOp(4, 8, 4, 1): {OpTLBI, "ipas2e1", false},
	sysOp(4, 8, 3, 0): {OpTLBI, "alle2is", true},
	sysOp(4, 8, 3, 1): {OpTLBI, "vae2is", false},
	sysOp(4, 8, 3, 4): {OpTLBI, "alle1is", true},
	sysOp(4, 8, 3, 6): {OpTLBI, "vmalls12e1is", true},
	sysOp(4, 8, 7, 0): {OpTLBI, "alle2", true},
	sysOp(4, 8, 7, 1): {OpTLBI, "vae2", false},
	sysOp(4, 8, 7, 4): {OpTLBI, "alle1", true},
	sysOp(4, 8, 7, 6): {OpTLBI, "vmalls12e1", true},
	sysOp(6, 8, 3, 0): {OpTLBI, "alle3is", true},
	sysOp(6, 8, 3, 1): {OpTLBI, "vae3is", false},
	sysOp(6, 8, 7, 0): {OpTLBI, "alle3", true},
	sysOp(6, 8, 7, 1): {OpTLBI, "vae3", false},
}
