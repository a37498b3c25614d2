package insts

// Flow classifies how an instruction changes the program counter.
type Flow uint8

// Control flow classes.
const (
	FlowNone       Flow = iota // falls through to the next instruction
	FlowBranch                 // unconditional direct branch
	FlowCondBranch             // conditional direct branch
	FlowCall                   // branch with link, direct or indirect
	FlowReturn                 // return from subroutine or exception
	FlowIndirect               // branch to a register
	FlowException              // generates an exception
)

var flowNames = [...]string{
	FlowNone:       "none",
	FlowBranch:     "branch",
	FlowCondBranch: "cond-branch",
	FlowCall:       "call",
	FlowReturn:     "return",
	FlowIndirect:   "indirect",
	FlowException:  "exception",
}

// String returns a short name for the flow class.
func (f Flow) String() string {
	if int(f) < len(flowNames) {
		return flowNames[f]
	}
	return "none"
}

var opFlows = map[Op]Flow{
	OpB: FlowBranch,

	OpBCOND:  FlowCondBranch,
	OpBCCOND: FlowCondBranch,
	OpCBZ:    FlowCondBranch,
	OpCBNZ:   FlowCondBranch,
	OpTBZ:    FlowCondBranch,
	OpTBNZ:   FlowCondBranch,

	OpBL:     FlowCall,
	OpBLR:    FlowCall,
	OpBLRAA:  FlowCall,
	OpBLRAAZ: FlowCall,
	OpBLRAB:  FlowCall,
	OpBLRABZ: FlowCall,

	OpRET:    FlowReturn,
	OpRETAA:  FlowReturn,
	OpRETAB:  FlowReturn,
	OpERET:   FlowReturn,
	OpERETAA: FlowReturn,
	OpERETAB: FlowReturn,
	OpDRPS:   FlowReturn,

	OpBR:    FlowIndirect,
	OpBRAA:  FlowIndirect,
	OpBRAAZ: FlowIndirect,
	OpBRAB:  FlowIndirect,
	OpBRABZ: FlowIndirect,

	OpSVC:   FlowException,
	OpHVC:   FlowException,
	OpSMC:   FlowException,
	OpBRK:   FlowException,
	OpHLT:   FlowException,
	OpUDF:   FlowException,
	OpDCPS1: FlowException,
	OpDCPS2: FlowException,
	OpDCPS3: FlowException,
}

// Flow returns the control flow class of the instruction.
func (i *Instruction) Flow() Flow {
	return opFlows[i.Op]
}

// BranchTarget returns the destination of a direct branch or call.
func (i *Instruction) BranchTarget() (uint64, bool) {
	switch i.Flow() {
	case FlowBranch, FlowCondBranch, FlowCall:
	default:
		return 0, false
	}
	for _, op := range i.Operands {
		if imm, ok := op.(Immediate); ok && imm.Kind == ImmAddress {
			return imm.Value, true
		}
	}
	return 0, false
}
