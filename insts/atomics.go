package insts

// ldAtomicOps is indexed by [opc][A:R][size class], with size classes
// byte, halfword and word-or-doubleword.
var ldAtomicOps = [8][4][3]Op{
	{
		{OpLDADDB, OpLDADDH, OpLDADD},
		{OpLDADDLB, OpLDADDLH, OpLDADDL},
		{OpLDADDAB, OpLDADDAH, OpLDADDA},
		{OpLDADDALB, OpLDADDALH, OpLDADDAL},
	},
	{
		{OpLDCLRB, OpLDCLRH, OpLDCLR},
		{OpLDCLRLB, OpLDCLRLH, OpLDCLRL},
		{OpLDCLRAB, OpLDCLRAH, OpLDCLRA},
		{OpLDCLRALB, OpLDCLRALH, OpLDCLRAL},
	},
	{
		{OpLDEORB, OpLDEORH, OpLDEOR},
		{OpLDEORLB, OpLDEORLH, OpLDEORL},
		{OpLDEORAB, OpLDEORAH, OpLDEORA},
		{OpLDEORALB, OpLDEORALH, OpLDEORAL},
	},
	{
		{OpLDSETB, OpLDSETH, OpLDSET},
		{OpLDSETLB, OpLDSETLH, OpLDSETL},
		{OpLDSETAB, OpLDSETAH, OpLDSETA},
		{OpLDSETALB, OpLDSETALH, OpLDSETAL},
	},
	{
		{OpLDSMAXB, OpLDSMAXH, OpLDSMAX},
		{OpLDSMAXLB, OpLDSMAXLH, OpLDSMAXL},
		{OpLDSMAXAB, OpLDSMAXAH, OpLDSMAXA},
		{OpLDSMAXALB, OpLDSMAXALH, OpLDSMAXAL},
	},
	{
		{OpLDSMINB, OpLDSMINH, OpLDSMIN},
		{OpLDSMINLB, OpLDSMINLH, OpLDSMINL},
		{OpLDSMINAB, OpLDSMINAH, OpLDSMINA},
		{OpLDSMINALB, OpLDSMINALH, OpLDSMINAL},
	},
	{
		{OpLDUMAXB, OpLDUMAXH, OpLDUMAX},
		{OpLDUMAXLB, OpLDUMAXLH, OpLDUMAXL},
		{OpLDUMAXAB, OpLDUMAXAH, OpLDUMAXA},
		{OpLDUMAXALB, OpLDUMAXALH, OpLDUMAXAL},
	},
	{
		{OpLDUMINB, OpLDUMINH, OpLDUMIN},
		{OpLDUMINLB, OpLDUMINLH, OpLDUMINL},
		{OpLDUMINAB, OpLDUMINAH, OpLDUMINA},
		{OpLDUMINALB, OpLDUMINALH, OpLDUMINAL},
	},
}

// stAtomicOps holds the ST<op> aliases, indexed by [opc][R][size class].
var stAtomicOps = [8][2][3]Op{
	{
		{OpSTADDB, OpSTADDH, OpSTADD},
		{OpSTADDLB, OpSTADDLH, OpSTADDL},
	},
	{
		{OpSTCLRB, OpSTCLRH, OpSTCLR},
		{OpSTCLRLB, OpSTCLRLH, OpSTCLRL},
	},
	{
		{OpSTEORB, OpSTEORH, OpSTEOR},
		{OpSTEORLB, OpSTEORLH, OpSTEORL},
	},
	{
		{OpSTSETB, OpSTSETH, OpSTSET},
		{OpSTSETLB, OpSTSETLH, OpSTSETL},
	},
	{
		{OpSTSMAXB, OpSTSMAXH, OpSTSMAX},
		{OpSTSMAXLB, OpSTSMAXLH, OpSTSMAXL},
	},
	{
		{OpSTSMINB, OpSTSMINH, OpSTSMIN},
		{OpSTSMINLB, OpSTSMINLH, OpSTSMINL},
	},
	{
		{OpSTUMAXB, OpSTUMAXH, OpSTUMAX},
		{OpSTUMAXLB, OpSTUMAXLH, OpSTUMAXL},
	},
	{
		{OpSTUMINB, OpSTUMINH, OpSTUMIN},
		{OpSTUMINLB, OpSTUMINLH, OpSTUMINL},
	},
}

// swpOps is indexed by [A:R][size class].
var swpOps = [4][3]Op{
	{OpSWPB, OpSWPH, OpSWP},
	{OpSWPLB, OpSWPLH, OpSWPL},
	{OpSWPAB, OpSWPAH, OpSWPA},
	{OpSWPALB, OpSWPALH, OpSWPAL},
}

// casOps is indexed by [L:o0][size class].
var casOps = [4][3]Op{
	{OpCASB, OpCASH, OpCAS},
	{OpCASLB, OpCASLH, OpCASL},
	{OpCASAB, OpCASAH, OpCASA},
	{OpCASALB, OpCASALH, OpCASAL},
}

// caspOps is indexed by [L:o0].
var caspOps = [4]Op{OpCASP, OpCASPL, OpCASPA, OpCASPAL}
