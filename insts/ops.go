package insts

// Op identifies an instruction or a preferred alias. Its String form is the
// lowercase mnemonic used in the disassembly text.
type Op uint16

// Instruction identifiers, alphabetical after the two reserved values.
const (
	OpUnknown Op = iota
	OpUndefined // word that does not decode; printed as .inst

	OpABS
	OpADC
	OpADCS
	OpADD
	OpADDG
	OpADDHN
	OpADDP
	OpADDS
	OpADDV
	OpADR
	OpADRP
	OpAESD
	OpAESE
	OpAESIMC
	OpAESMC
	OpAND
	OpANDS
	OpASR
	OpASRV
	OpAT
	OpAUTDA
	OpAUTDB
	OpAUTDZA
	OpAUTDZB
	OpAUTIA
	OpAUTIA1716
	OpAUTIASP
	OpAUTIAZ
	OpAUTIB
	OpAUTIB1716
	OpAUTIBSP
	OpAUTIBZ
	OpAUTIZA
	OpAUTIZB
	OpAXFLAG

	OpB
	OpBCAX
	OpBCCOND
	OpBCOND
	OpBFC
	OpBFCVT
	OpBFI
	OpBFM
	OpBFXIL
	OpBIC
	OpBICS
	OpBIF
	OpBIT
	OpBL
	OpBLR
	OpBLRAA
	OpBLRAAZ
	OpBLRAB
	OpBLRABZ
	OpBR
	OpBRAA
	OpBRAAZ
	OpBRAB
	OpBRABZ
	OpBRK
	OpBSL
	OpBTI

	OpCAS
	OpCASA
	OpCASAB
	OpCASAH
	OpCASAL
	OpCASALB
	OpCASALH
	OpCASB
	OpCASH
	OpCASL
	OpCASLB
	OpCASLH
	OpCASP
	OpCASPA
	OpCASPAL
	OpCASPL
	OpCBNZ
	OpCBZ
	OpCCMN
	OpCCMP
	OpCFINV
	OpCINC
	OpCINV
	OpCLREX
	OpCLS
	OpCLZ
	OpCMEQ
	OpCMGE
	OpCMGT
	OpCMHI
	OpCMHS
	OpCMLE
	OpCMLT
	OpCMN
	OpCMP
	OpCMPP
	OpCMTST
	OpCNEG
	OpCNT
	OpCRC32B
	OpCRC32CB
	OpCRC32CH
	OpCRC32CW
	OpCRC32CX
	OpCRC32H
	OpCRC32W
	OpCRC32X
	OpCSDB
	OpCSEL
	OpCSET
	OpCSETM
	OpCSINC
	OpCSINV
	OpCSNEG
	OpCTZ

	OpDC
	OpDCPS1
	OpDCPS2
	OpDCPS3
	OpDGH
	OpDMB
	OpDRPS
	OpDSB
	OpDUP

	OpEON
	OpEOR
	OpEOR3
	OpERET
	OpERETAA
	OpERETAB
	OpESB
	OpEXT
	OpEXTR

	OpFABD
	OpFABS
	OpFACGE
	OpFACGT
	OpFADD
	OpFADDP
	OpFCADD
	OpFCCMP
	OpFCCMPE
	OpFCMEQ
	OpFCMGE
	OpFCMGT
	OpFCMLA
	OpFCMLE
	OpFCMLT
	OpFCMP
	OpFCMPE
	OpFCSEL
	OpFCVT
	OpFCVTAS
	OpFCVTAU
	OpFCVTL
	OpFCVTMS
	OpFCVTMU
	OpFCVTN
	OpFCVTNS
	OpFCVTNU
	OpFCVTPS
	OpFCVTPU
	OpFCVTXN
	OpFCVTZS
	OpFCVTZU
	OpFDIV
	OpFJCVTZS
	OpFMADD
	OpFMAX
	OpFMAXNM
	OpFMAXNMP
	OpFMAXNMV
	OpFMAXP
	OpFMAXV
	OpFMIN
	OpFMINNM
	OpFMINNMP
	OpFMINNMV
	OpFMINP
	OpFMINV
	OpFMLA
	OpFMLS
	OpFMOV
	OpFMSUB
	OpFMUL
	OpFMULX
	OpFNEG
	OpFNMADD
	OpFNMSUB
	OpFNMUL
	OpFRECPE
	OpFRECPS
	OpFRECPX
	OpFRINT32X
	OpFRINT32Z
	OpFRINT64X
	OpFRINT64Z
	OpFRINTA
	OpFRINTI
	OpFRINTM
	OpFRINTN
	OpFRINTP
	OpFRINTX
	OpFRINTZ
	OpFRSQRTE
	OpFRSQRTS
	OpFSQRT
	OpFSUB

	OpGMI

	OpHINT
	OpHLT
	OpHVC

	OpIC
	OpINS
	OpIRG
	OpISB

	OpLD1
	OpLD1R
	OpLD2
	OpLD2R
	OpLD3
	OpLD3R
	OpLD4
	OpLD4R
	OpLDADD
	OpLDADDA
	OpLDADDAB
	OpLDADDAH
	OpLDADDAL
	OpLDADDALB
	OpLDADDALH
	OpLDADDB
	OpLDADDH
	OpLDADDL
	OpLDADDLB
	OpLDADDLH
	OpLDAPR
	OpLDAPRB
	OpLDAPRH
	OpLDAPUR
	OpLDAPURB
	OpLDAPURH
	OpLDAPURSB
	OpLDAPURSH
	OpLDAPURSW
	OpLDAR
	OpLDARB
	OpLDARH
	OpLDAXP
	OpLDAXR
	OpLDAXRB
	OpLDAXRH
	OpLDCLR
	OpLDCLRA
	OpLDCLRAB
	OpLDCLRAH
	OpLDCLRAL
	OpLDCLRALB
	OpLDCLRALH
	OpLDCLRB
	OpLDCLRH
	OpLDCLRL
	OpLDCLRLB
	OpLDCLRLH
	OpLDEOR
	OpLDEORA
	OpLDEORAB
	OpLDEORAH
	OpLDEORAL
	OpLDEORALB
	OpLDEORALH
	OpLDEORB
	OpLDEORH
	OpLDEORL
	OpLDEORLB
	OpLDEORLH
	OpLDG
	OpLDGM
	OpLDLAR
	OpLDLARB
	OpLDLARH
	OpLDNP
	OpLDP
	OpLDPSW
	OpLDR
	OpLDRAA
	OpLDRAB
	OpLDRB
	OpLDRH
	OpLDRSB
	OpLDRSH
	OpLDRSW
	OpLDSET
	OpLDSETA
	OpLDSETAB
	OpLDSETAH
	OpLDSETAL
	OpLDSETALB
	OpLDSETALH
	OpLDSETB
	OpLDSETH
	OpLDSETL
	OpLDSETLB
	OpLDSETLH
	OpLDSMAX
	OpLDSMAXA
	OpLDSMAXAB
	OpLDSMAXAH
	OpLDSMAXAL
	OpLDSMAXALB
	OpLDSMAXALH
	OpLDSMAXB
	OpLDSMAXH
	OpLDSMAXL
	OpLDSMAXLB
	OpLDSMAXLH
	OpLDSMIN
	OpLDSMINA
	OpLDSMINAB
	OpLDSMINAH
	OpLDSMINAL
	OpLDSMINALB
	OpLDSMINALH
	OpLDSMINB
	OpLDSMINH
	OpLDSMINL
	OpLDSMINLB
	OpLDSMINLH
	OpLDTR
	OpLDTRB
	OpLDTRH
	OpLDTRSB
	OpLDTRSH
	OpLDTRSW
	OpLDUMAX
	OpLDUMAXA
	OpLDUMAXAB
	OpLDUMAXAH
	OpLDUMAXAL
	OpLDUMAXALB
	OpLDUMAXALH
	OpLDUMAXB
	OpLDUMAXH
	OpLDUMAXL
	OpLDUMAXLB
	OpLDUMAXLH
	OpLDUMIN
	OpLDUMINA
	OpLDUMINAB
	OpLDUMINAH
	OpLDUMINAL
	OpLDUMINALB
	OpLDUMINALH
	OpLDUMINB
	OpLDUMINH
	OpLDUMINL
	OpLDUMINLB
	OpLDUMINLH
	OpLDUR
	OpLDURB
	OpLDURH
	OpLDURSB
	OpLDURSH
	OpLDURSW
	OpLDXP
	OpLDXR
	OpLDXRB
	OpLDXRH
	OpLSL
	OpLSLV
	OpLSR
	OpLSRV

	OpMADD
	OpMLA
	OpMLS
	OpMNEG
	OpMOV
	OpMOVI
	OpMOVK
	OpMOVN
	OpMOVZ
	OpMRS
	OpMSR
	OpMSUB
	OpMUL
	OpMVN
	OpMVNI

	OpNEG
	OpNEGS
	OpNGC
	OpNGCS
	OpNOP
	OpNOT

	OpORN
	OpORR

	OpPACDA
	OpPACDB
	OpPACDZA
	OpPACDZB
	OpPACGA
	OpPACIA
	OpPACIA1716
	OpPACIASP
	OpPACIAZ
	OpPACIB
	OpPACIB1716
	OpPACIBSP
	OpPACIBZ
	OpPACIZA
	OpPACIZB
	OpPMUL
	OpPMULL
	OpPRFM
	OpPRFUM
	OpPSB
	OpPSSBB

	OpRADDHN
	OpRAX1
	OpRBIT
	OpRET
	OpRETAA
	OpRETAB
	OpREV
	OpREV16
	OpREV32
	OpREV64
	OpRMIF
	OpROR
	OpRORV
	OpRSHRN
	OpRSUBHN

	OpSABA
	OpSABAL
	OpSABD
	OpSABDL
	OpSADALP
	OpSADDL
	OpSADDLP
	OpSADDLV
	OpSADDW
	OpSB
	OpSBC
	OpSBCS
	OpSBFIZ
	OpSBFM
	OpSBFX
	OpSCVTF
	OpSDIV
	OpSDOT
	OpSETF16
	OpSETF8
	OpSEV
	OpSEVL
	OpSHA1C
	OpSHA1H
	OpSHA1M
	OpSHA1P
	OpSHA1SU0
	OpSHA1SU1
	OpSHA256H
	OpSHA256H2
	OpSHA256SU0
	OpSHA256SU1
	OpSHA512H
	OpSHA512H2
	OpSHA512SU0
	OpSHA512SU1
	OpSHADD
	OpSHL
	OpSHLL
	OpSHRN
	OpSHSUB
	OpSLI
	OpSM3PARTW1
	OpSM3PARTW2
	OpSM3SS1
	OpSM4E
	OpSM4EKEY
	OpSMADDL
	OpSMAX
	OpSMAXP
	OpSMAXV
	OpSMC
	OpSMIN
	OpSMINP
	OpSMINV
	OpSMLAL
	OpSMLSL
	OpSMNEGL
	OpSMOV
	OpSMSUBL
	OpSMULH
	OpSMULL
	OpSQABS
	OpSQADD
	OpSQDMLAL
	OpSQDMLSL
	OpSQDMULH
	OpSQDMULL
	OpSQNEG
	OpSQRDMLAH
	OpSQRDMLSH
	OpSQRDMULH
	OpSQRSHL
	OpSQRSHRN
	OpSQRSHRUN
	OpSQSHL
	OpSQSHLU
	OpSQSHRN
	OpSQSHRUN
	OpSQSUB
	OpSQXTN
	OpSQXTUN
	OpSRHADD
	OpSRI
	OpSRSHL
	OpSRSHR
	OpSRSRA
	OpSSBB
	OpSSHL
	OpSSHLL
	OpSSHR
	OpSSRA
	OpSSUBL
	OpSSUBW
	OpST1
	OpST2
	OpST2G
	OpST3
	OpST4
	OpSTADD
	OpSTADDB
	OpSTADDH
	OpSTADDL
	OpSTADDLB
	OpSTADDLH
	OpSTCLR
	OpSTCLRB
	OpSTCLRH
	OpSTCLRL
	OpSTCLRLB
	OpSTCLRLH
	OpSTEOR
	OpSTEORB
	OpSTEORH
	OpSTEORL
	OpSTEORLB
	OpSTEORLH
	OpSTG
	OpSTGM
	OpSTGP
	OpSTLLR
	OpSTLLRB
	OpSTLLRH
	OpSTLR
	OpSTLRB
	OpSTLRH
	OpSTLUR
	OpSTLURB
	OpSTLURH
	OpSTLXP
	OpSTLXR
	OpSTLXRB
	OpSTLXRH
	OpSTNP
	OpSTP
	OpSTR
	OpSTRB
	OpSTRH
	OpSTSET
	OpSTSETB
	OpSTSETH
	OpSTSETL
	OpSTSETLB
	OpSTSETLH
	OpSTSMAX
	OpSTSMAXB
	OpSTSMAXH
	OpSTSMAXL
	OpSTSMAXLB
	OpSTSMAXLH
	OpSTSMIN
	OpSTSMINB
	OpSTSMINH
	OpSTSMINL
	OpSTSMINLB
	OpSTSMINLH
	OpSTTR
	OpSTTRB
	OpSTTRH
	OpSTUMAX
	OpSTUMAXB
	OpSTUMAXH
	OpSTUMAXL
	OpSTUMAXLB
	OpSTUMAXLH
	OpSTUMIN
	OpSTUMINB
	OpSTUMINH
	OpSTUMINL
	OpSTUMINLB
	OpSTUMINLH
	OpSTUR
	OpSTURB
	OpSTURH
	OpSTXP
	OpSTXR
	OpSTXRB
	OpSTXRH
	OpSTZ2G
	OpSTZG
	OpSTZGM
	OpSUB
	OpSUBG
	OpSUBHN
	OpSUBP
	OpSUBPS
	OpSUBS
	OpSUQADD
	OpSVC
	OpSWP
	OpSWPA
	OpSWPAB
	OpSWPAH
	OpSWPAL
	OpSWPALB
	OpSWPALH
	OpSWPB
	OpSWPH
	OpSWPL
	OpSWPLB
	OpSWPLH
	OpSXTB
	OpSXTH
	OpSXTL
	OpSXTW
	OpSYS
	OpSYSL

	OpTBL
	OpTBNZ
	OpTBX
	OpTBZ
	OpTCANCEL
	OpTCOMMIT
	OpTLBI
	OpTRN1
	OpTRN2
	OpTSB
	OpTST

	OpUABA
	OpUABAL
	OpUABD
	OpUABDL
	OpUADALP
	OpUADDL
	OpUADDLP
	OpUADDLV
	OpUADDW
	OpUBFIZ
	OpUBFM
	OpUBFX
	OpUCVTF
	OpUDF
	OpUDIV
	OpUDOT
	OpUHADD
	OpUHSUB
	OpUMADDL
	OpUMAX
	OpUMAXP
	OpUMAXV
	OpUMIN
	OpUMINP
	OpUMINV
	OpUMLAL
	OpUMLSL
	OpUMNEGL
	OpUMOV
	OpUMSUBL
	OpUMULH
	OpUMULL
	OpUQADD
	OpUQRSHL
	OpUQRSHRN
	OpUQSHL
	OpUQSHRN
	OpUQSUB
	OpUQXTN
	OpURECPE
	OpURHADD
	OpURSHL
	OpURSHR
	OpURSQRTE
	OpURSRA
	OpUSDOT
	OpUSHL
	OpUSHLL
	OpUSHR
	OpUSQADD
	OpUSRA
	OpUSUBL
	OpUSUBW
	OpUXTB
	OpUXTH
	OpUXTL
	OpUZP1
	OpUZP2

	OpWFE
	OpWFET
	OpWFI
	OpWFIT

	OpXAFLAG
	OpXAR
	OpXPACD
	OpXPACI
	OpXPACLRI
	OpXTN

	OpYIELD

	OpZIP1
	OpZIP2
)

var opNames = [...]string{
	OpUnknown:   "unknown",
	OpUndefined: ".inst",

	OpABS:       "abs",
	OpADC:       "adc",
	OpADCS:      "adcs",
	OpADD:       "add",
	OpADDG:      "addg",
	OpADDHN:     "addhn",
	OpADDP:      "addp",
	OpADDS:      "adds",
	OpADDV:      "addv",
	OpADR:       "adr",
	OpADRP:      "adrp",
	OpAESD:      "aesd",
	OpAESE:      "aese",
	OpAESIMC:    "aesimc",
	OpAESMC:     "aesmc",
	OpAND:       "and",
	OpANDS:      "ands",
	OpASR:       "asr",
	OpASRV:      "asrv",
	OpAT:        "at",
	OpAUTDA:     "autda",
	OpAUTDB:     "autdb",
	OpAUTDZA:    "autdza",
	OpAUTDZB:    "autdzb",
	OpAUTIA:     "autia",
	OpAUTIA1716: "autia1716",
	OpAUTIASP:   "autiasp",
	OpAUTIAZ:    "autiaz",
	OpAUTIB:     "autib",
	OpAUTIB1716: "autib1716",
	OpAUTIBSP:   "autibsp",
	OpAUTIBZ:    "autibz",
	OpAUTIZA:    "autiza",
	OpAUTIZB:    "autizb",
	OpAXFLAG:    "axflag",

	OpB:      "b",
	OpBCAX:   "bcax",
	OpBCCOND: "bc",
	OpBCOND:  "b",
	OpBFC:    "bfc",
	OpBFCVT:  "bfcvt",
	OpBFI:    "bfi",
	OpBFM:    "bfm",
	OpBFXIL:  "bfxil",
	OpBIC:    "bic",
	OpBICS:   "bics",
	OpBIF:    "bif",
	OpBIT:    "bit",
	OpBL:     "bl",
	OpBLR:    "blr",
	OpBLRAA:  "blraa",
	OpBLRAAZ: "blraaz",
	OpBLRAB:  "blrab",
	OpBLRABZ: "blrabz",
	OpBR:     "br",
	OpBRAA:   "braa",
	OpBRAAZ:  "braaz",
	OpBRAB:   "brab",
	OpBRABZ:  "brabz",
	OpBRK:    "brk",
	OpBSL:    "bsl",
	OpBTI:    "bti",

	OpCAS:     "cas",
	OpCASA:    "casa",
	OpCASAB:   "casab",
	OpCASAH:   "casah",
	OpCASAL:   "casal",
	OpCASALB:  "casalb",
	OpCASALH:  "casalh",
	OpCASB:    "casb",
	OpCASH:    "cash",
	OpCASL:    "casl",
	OpCASLB:   "caslb",
	OpCASLH:   "caslh",
	OpCASP:    "casp",
	OpCASPA:   "caspa",
	OpCASPAL:  "caspal",
	OpCASPL:   "caspl",
	OpCBNZ:    "cbnz",
	OpCBZ:     "cbz",
	OpCCMN:    "ccmn",
	OpCCMP:    "ccmp",
	OpCFINV:   "cfinv",
	OpCINC:    "cinc",
	OpCINV:    "cinv",
	OpCLREX:   "clrex",
	OpCLS:     "cls",
	OpCLZ:     "clz",
	OpCMEQ:    "cmeq",
	OpCMGE:    "cmge",
	OpCMGT:    "cmgt",
	OpCMHI:    "cmhi",
	OpCMHS:    "cmhs",
	OpCMLE:    "cmle",
	OpCMLT:    "cmlt",
	OpCMN:     "cmn",
	OpCMP:     "cmp",
	OpCMPP:    "cmpp",
	OpCMTST:   "cmtst",
	OpCNEG:    "cneg",
	OpCNT:     "cnt",
	OpCRC32B:  "crc32b",
	OpCRC32CB: "crc32cb",
	OpCRC32CH: "crc32ch",
	OpCRC32CW: "crc32cw",
	OpCRC32CX: "crc32cx",
	OpCRC32H:  "crc32h",
	OpCRC32W:  "crc32w",
	OpCRC32X:  "crc32x",
	OpCSDB:    "csdb",
	OpCSEL:    "csel",
	OpCSET:    "cset",
	OpCSETM:   "csetm",
	OpCSINC:   "csinc",
	OpCSINV:   "csinv",
	OpCSNEG:   "csneg",
	OpCTZ:     "ctz",

	OpDC:    "dc",
	OpDCPS1: "dcps1",
	OpDCPS2: "dcps2",
	OpDCPS3: "dcps3",
	OpDGH:   "dgh",
	OpDMB:   "dmb",
	OpDRPS:  "drps",
	OpDSB:   "dsb",
	OpDUP:   "dup",

	OpEON:    "eon",
	OpEOR:    "eor",
	OpEOR3:   "eor3",
	OpERET:   "eret",
	OpERETAA: "eretaa",
	OpERETAB: "eretab",
	OpESB:    "esb",
	OpEXT:    "ext",
	OpEXTR:   "extr",

	OpFABD:     "fabd",
	OpFABS:     "fabs",
	OpFACGE:    "facge",
	OpFACGT:    "facgt",
	OpFADD:     "fadd",
	OpFADDP:    "faddp",
	OpFCADD:    "fcadd",
	OpFCCMP:    "fccmp",
	OpFCCMPE:   "fccmpe",
	OpFCMEQ:    "fcmeq",
	OpFCMGE:    "fcmge",
	OpFCMGT:    "fcmgt",
	OpFCMLA:    "fcmla",
	OpFCMLE:    "fcmle",
	OpFCMLT:    "fcmlt",
	OpFCMP:     "fcmp",
	OpFCMPE:    "fcmpe",
	OpFCSEL:    "fcsel",
	OpFCVT:     "fcvt",
	OpFCVTAS:   "fcvtas",
	OpFCVTAU:   "fcvtau",
	OpFCVTL:    "fcvtl",
	OpFCVTMS:   "fcvtms",
	OpFCVTMU:   "fcvtmu",
	OpFCVTN:    "fcvtn",
	OpFCVTNS:   "fcvtns",
	OpFCVTNU:   "fcvtnu",
	OpFCVTPS:   "fcvtps",
	OpFCVTPU:   "fcvtpu",
	OpFCVTXN:   "fcvtxn",
	OpFCVTZS:   "fcvtzs",
	OpFCVTZU:   "fcvtzu",
	OpFDIV:     "fdiv",
	OpFJCVTZS:  "fjcvtzs",
	OpFMADD:    "fmadd",
	OpFMAX:     "fmax",
	OpFMAXNM:   "fmaxnm",
	OpFMAXNMP:  "fmaxnmp",
	OpFMAXNMV:  "fmaxnmv",
	OpFMAXP:    "fmaxp",
	OpFMAXV:    "fmaxv",
	OpFMIN:     "fmin",
	OpFMINNM:   "fminnm",
	OpFMINNMP:  "fminnmp",
	OpFMINNMV:  "fminnmv",
	OpFMINP:    "fminp",
	OpFMINV:    "fminv",
	OpFMLA:     "fmla",
	OpFMLS:     "fmls",
	OpFMOV:     "fmov",
	OpFMSUB:    "fmsub",
	OpFMUL:     "fmul",
	OpFMULX:    "fmulx",
	OpFNEG:     "fneg",
	OpFNMADD:   "fnmadd",
	OpFNMSUB:   "fnmsub",
	OpFNMUL:    "fnmul",
	OpFRECPE:   "frecpe",
	OpFRECPS:   "frecps",
	OpFRECPX:   "frecpx",
	OpFRINT32X: "frint32x",
	OpFRINT32Z: "frint32z",
	OpFRINT64X: "frint64x",
	OpFRINT64Z: "frint64z",
	OpFRINTA:   "frinta",
	OpFRINTI:   "frinti",
	OpFRINTM:   "frintm",
	OpFRINTN:   "frintn",
	OpFRINTP:   "frintp",
	OpFRINTX:   "frintx",
	OpFRINTZ:   "frintz",
	OpFRSQRTE:  "frsqrte",
	OpFRSQRTS:  "frsqrts",
	OpFSQRT:    "fsqrt",
	OpFSUB:     "fsub",

	OpGMI: "gmi",

	OpHINT: "hint",
	OpHLT:  "hlt",
	OpHVC:  "hvc",

	OpIC:  "ic",
	OpINS: "ins",
	OpIRG: "irg",
	OpISB: "isb",

	OpLD1:       "ld1",
	OpLD1R:      "ld1r",
	OpLD2:       "ld2",
	OpLD2R:      "ld2r",
	OpLD3:       "ld3",
	OpLD3R:      "ld3r",
	OpLD4:       "ld4",
	OpLD4R:      "ld4r",
	OpLDADD:     "ldadd",
	OpLDADDA:    "ldadda",
	OpLDADDAB:   "ldaddab",
	OpLDADDAH:   "ldaddah",
	OpLDADDAL:   "ldaddal",
	OpLDADDALB:  "ldaddalb",
	OpLDADDALH:  "ldaddalh",
	OpLDADDB:    "ldaddb",
	OpLDADDH:    "ldaddh",
	OpLDADDL:    "ldaddl",
	OpLDADDLB:   "ldaddlb",
	OpLDADDLH:   "ldaddlh",
	OpLDAPR:     "ldapr",
	OpLDAPRB:    "ldaprb",
	OpLDAPRH:    "ldaprh",
	OpLDAPUR:    "ldapur",
	OpLDAPURB:   "ldapurb",
	OpLDAPURH:   "ldapurh",
	OpLDAPURSB:  "ldapursb",
	OpLDAPURSH:  "ldapursh",
	OpLDAPURSW:  "ldapursw",
	OpLDAR:      "ldar",
	OpLDARB:     "ldarb",
	OpLDARH:     "ldarh",
	OpLDAXP:     "ldaxp",
	OpLDAXR:     "ldaxr",
	OpLDAXRB:    "ldaxrb",
	OpLDAXRH:    "ldaxrh",
	OpLDCLR:     "ldclr",
	OpLDCLRA:    "ldclra",
	OpLDCLRAB:   "ldclrab",
	OpLDCLRAH:   "ldclrah",
	OpLDCLRAL:   "ldclral",
	OpLDCLRALB:  "ldclralb",
	OpLDCLRALH:  "ldclralh",
	OpLDCLRB:    "ldclrb",
	OpLDCLRH:    "ldclrh",
	OpLDCLRL:    "ldclrl",
	OpLDCLRLB:   "ldclrlb",
	OpLDCLRLH:   "ldclrlh",
	OpLDEOR:     "ldeor",
	OpLDEORA:    "ldeora",
	OpLDEORAB:   "ldeorab",
	OpLDEORAH:   "ldeorah",
	OpLDEORAL:   "ldeoral",
	OpLDEORALB:  "ldeoralb",
	OpLDEORALH:  "ldeoralh",
	OpLDEORB:    "ldeorb",
	OpLDEORH:    "ldeorh",
	OpLDEORL:    "ldeorl",
	OpLDEORLB:   "ldeorlb",
	OpLDEORLH:   "ldeorlh",
	OpLDG:       "ldg",
	OpLDGM:      "ldgm",
	OpLDLAR:     "ldlar",
	OpLDLARB:    "ldlarb",
	OpLDLARH:    "ldlarh",
	OpLDNP:      "ldnp",
	OpLDP:       "ldp",
	OpLDPSW:     "ldpsw",
	OpLDR:       "ldr",
	OpLDRAA:     "ldraa",
	OpLDRAB:     "ldrab",
	OpLDRB:      "ldrb",
	OpLDRH:      "ldrh",
	OpLDRSB:     "ldrsb",
	OpLDRSH:     "ldrsh",
	OpLDRSW:     "ldrsw",
	OpLDSET:     "ldset",
	OpLDSETA:    "ldseta",
	OpLDSETAB:   "ldsetab",
	OpLDSETAH:   "ldsetah",
	OpLDSETAL:   "ldsetal",
	OpLDSETALB:  "ldsetalb",
	OpLDSETALH:  "ldsetalh",
	OpLDSETB:    "ldsetb",
	OpLDSETH:    "ldseth",
	OpLDSETL:    "ldsetl",
	OpLDSETLB:   "ldsetlb",
	OpLDSETLH:   "ldsetlh",
	OpLDSMAX:    "ldsmax",
	OpLDSMAXA:   "ldsmaxa",
	OpLDSMAXAB:  "ldsmaxab",
	OpLDSMAXAH:  "ldsmaxah",
	OpLDSMAXAL:  "ldsmaxal",
	OpLDSMAXALB: "ldsmaxalb",
	OpLDSMAXALH: "ldsmaxalh",
	OpLDSMAXB:   "ldsmaxb",
	OpLDSMAXH:   "ldsmaxh",
	OpLDSMAXL:   "ldsmaxl",
	OpLDSMAXLB:  "ldsmaxlb",
	OpLDSMAXLH:  "ldsmaxlh",
	OpLDSMIN:    "ldsmin",
	OpLDSMINA:   "ldsmina",
	OpLDSMINAB:  "ldsminab",
	OpLDSMINAH:  "ldsminah",
	OpLDSMINAL:  "ldsminal",
	OpLDSMINALB: "ldsminalb",
	OpLDSMINALH: "ldsminalh",
	OpLDSMINB:   "ldsminb",
	OpLDSMINH:   "ldsminh",
	OpLDSMINL:   "ldsminl",
	OpLDSMINLB:  "ldsminlb",
	OpLDSMINLH:  "ldsminlh",
	OpLDTR:      "ldtr",
	OpLDTRB:     "ldtrb",
	OpLDTRH:     "ldtrh",
	OpLDTRSB:    "ldtrsb",
	OpLDTRSH:    "ldtrsh",
	OpLDTRSW:    "ldtrsw",
	OpLDUMAX:    "ldumax",
	OpLDUMAXA:   "ldumaxa",
	OpLDUMAXAB:  "ldumaxab",
	OpLDUMAXAH:  "ldumaxah",
	OpLDUMAXAL:  "ldumaxal",
	OpLDUMAXALB: "ldumaxalb",
	OpLDUMAXALH: "ldumaxalh",
	OpLDUMAXB:   "ldumaxb",
	OpLDUMAXH:   "ldumaxh",
	OpLDUMAXL:   "ldumaxl",
	OpLDUMAXLB:  "ldumaxlb",
	OpLDUMAXLH:  "ldumaxlh",
	OpLDUMIN:    "ldumin",
	OpLDUMINA:   "ldumina",
	OpLDUMINAB:  "lduminab",
	OpLDUMINAH:  "lduminah",
	OpLDUMINAL:  "lduminal",
	OpLDUMINALB: "lduminalb",
	OpLDUMINALH: "lduminalh",
	OpLDUMINB:   "lduminb",
	OpLDUMINH:   "lduminh",
	OpLDUMINL:   "lduminl",
	OpLDUMINLB:  "lduminlb",
	OpLDUMINLH:  "lduminlh",
	OpLDUR:      "ldur",
	OpLDURB:     "ldurb",
	OpLDURH:     "ldurh",
	OpLDURSB:    "ldursb",
	OpLDURSH:    "ldursh",
	OpLDURSW:    "ldursw",
	OpLDXP:      "ldxp",
	OpLDXR:      "ldxr",
	OpLDXRB:     "ldxrb",
	OpLDXRH:     "ldxrh",
	OpLSL:       "lsl",
	OpLSLV:      "lslv",
	OpLSR:       "lsr",
	OpLSRV:      "lsrv",

	OpMADD: "madd",
	OpMLA:  "mla",
	OpMLS:  "mls",
	OpMNEG: "mneg",
	OpMOV:  "mov",
	OpMOVI: "movi",
	OpMOVK: "movk",
	OpMOVN: "movn",
	OpMOVZ: "movz",
	OpMRS:  "mrs",
	OpMSR:  "msr",
	OpMSUB: "msub",
	OpMUL:  "mul",
	OpMVN:  "mvn",
	OpMVNI: "mvni",

	OpNEG:  "neg",
	OpNEGS: "negs",
	OpNGC:  "ngc",
	OpNGCS: "ngcs",
	OpNOP:  "nop",
	OpNOT:  "not",

	OpORN: "orn",
	OpORR: "orr",

	OpPACDA:     "pacda",
	OpPACDB:     "pacdb",
	OpPACDZA:    "pacdza",
	OpPACDZB:    "pacdzb",
	OpPACGA:     "pacga",
	OpPACIA:     "pacia",
	OpPACIA1716: "pacia1716",
	OpPACIASP:   "paciasp",
	OpPACIAZ:    "paciaz",
	OpPACIB:     "pacib",
	OpPACIB1716: "pacib1716",
	OpPACIBSP:   "pacibsp",
	OpPACIBZ:    "pacibz",
	OpPACIZA:    "paciza",
	OpPACIZB:    "pacizb",
	OpPMUL:      "pmul",
	OpPMULL:     "pmull",
	OpPRFM:      "prfm",
	OpPRFUM:     "prfum",
	OpPSB:       "psb",
	OpPSSBB:     "pssbb",

	OpRADDHN: "raddhn",
	OpRAX1:   "rax1",
	OpRBIT:   "rbit",
	OpRET:    "ret",
	OpRETAA:  "retaa",
	OpRETAB:  "retab",
	OpREV:    "rev",
	OpREV16:  "rev16",
	OpREV32:  "rev32",
	OpREV64:  "rev64",
	OpRMIF:   "rmif",
	OpROR:    "ror",
	OpRORV:   "rorv",
	OpRSHRN:  "rshrn",
	OpRSUBHN: "rsubhn",

	OpSABA:      "saba",
	OpSABAL:     "sabal",
	OpSABD:      "sabd",
	OpSABDL:     "sabdl",
	OpSADALP:    "sadalp",
	OpSADDL:     "saddl",
	OpSADDLP:    "saddlp",
	OpSADDLV:    "saddlv",
	OpSADDW:     "saddw",
	OpSB:        "sb",
	OpSBC:       "sbc",
	OpSBCS:      "sbcs",
	OpSBFIZ:     "sbfiz",
	OpSBFM:      "sbfm",
	OpSBFX:      "sbfx",
	OpSCVTF:     "scvtf",
	OpSDIV:      "sdiv",
	OpSDOT:      "sdot",
	OpSETF16:    "setf16",
	OpSETF8:     "setf8",
	OpSEV:       "sev",
	OpSEVL:      "sevl",
	OpSHA1C:     "sha1c",
	OpSHA1H:     "sha1h",
	OpSHA1M:     "sha1m",
	OpSHA1P:     "sha1p",
	OpSHA1SU0:   "sha1su0",
	OpSHA1SU1:   "sha1su1",
	OpSHA256H:   "sha256h",
	OpSHA256H2:  "sha256h2",
	OpSHA256SU0: "sha256su0",
	OpSHA256SU1: "sha256su1",
	OpSHA512H:   "sha512h",
	OpSHA512H2:  "sha512h2",
	OpSHA512SU0: "sha512su0",
	OpSHA512SU1: "sha512su1",
	OpSHADD:     "shadd",
	OpSHL:       "shl",
	OpSHLL:      "shll",
	OpSHRN:      "shrn",
	OpSHSUB:     "shsub",
	OpSLI:       "sli",
	OpSM3PARTW1: "sm3partw1",
	OpSM3PARTW2: "sm3partw2",
	OpSM3SS1:    "sm3ss1",
	OpSM4E:      "sm4e",
	OpSM4EKEY:   "sm4ekey",
	OpSMADDL:    "smaddl",
	OpSMAX:      "smax",
	OpSMAXP:     "smaxp",
	OpSMAXV:     "smaxv",
	OpSMC:       "smc",
	OpSMIN:      "smin",
	OpSMINP:     "sminp",
	OpSMINV:     "sminv",
	OpSMLAL:     "smlal",
	OpSMLSL:     "smlsl",
	OpSMNEGL:    "smnegl",
	OpSMOV:      "smov",
	OpSMSUBL:    "smsubl",
	OpSMULH:     "smulh",
	OpSMULL:     "smull",
	OpSQABS:     "sqabs",
	OpSQADD:     "sqadd",
	OpSQDMLAL:   "sqdmlal",
	OpSQDMLSL:   "sqdmlsl",
	OpSQDMULH:   "sqdmulh",
	OpSQDMULL:   "sqdmull",
	OpSQNEG:     "sqneg",
	OpSQRDMLAH:  "sqrdmlah",
	OpSQRDMLSH:  "sqrdmlsh",
	OpSQRDMULH:  "sqrdmulh",
	OpSQRSHL:    "sqrshl",
	OpSQRSHRN:   "sqrshrn",
	OpSQRSHRUN:  "sqrshrun",
	OpSQSHL:     "sqshl",
	OpSQSHLU:    "sqshlu",
	OpSQSHRN:    "sqshrn",
	OpSQSHRUN:   "sqshrun",
	OpSQSUB:     "sqsub",
	OpSQXTN:     "sqxtn",
	OpSQXTUN:    "sqxtun",
	OpSRHADD:    "srhadd",
	OpSRI:       "sri",
	OpSRSHL:     "srshl",
	OpSRSHR:     "srshr",
	OpSRSRA:     "srsra",
	OpSSBB:      "ssbb",
	OpSSHL:      "sshl",
	OpSSHLL:     "sshll",
	OpSSHR:      "sshr",
	OpSSRA:      "ssra",
	OpSSUBL:     "ssubl",
	OpSSUBW:     "ssubw",
	OpST1:       "st1",
	OpST2:       "st2",
	OpST2G:      "st2g",
	OpST3:       "st3",
	OpST4:       "st4",
	OpSTADD:     "stadd",
	OpSTADDB:    "staddb",
	OpSTADDH:    "staddh",
	OpSTADDL:    "staddl",
	OpSTADDLB:   "staddlb",
	OpSTADDLH:   "staddlh",
	OpSTCLR:     "stclr",
	OpSTCLRB:    "stclrb",
	OpSTCLRH:    "stclrh",
	OpSTCLRL:    "stclrl",
	OpSTCLRLB:   "stclrlb",
	OpSTCLRLH:   "stclrlh",
	OpSTEOR:     "steor",
	OpSTEORB:    "steorb",
	OpSTEORH:    "steorh",
	OpSTEORL:    "steorl",
	OpSTEORLB:   "steorlb",
	OpSTEORLH:   "steorlh",
	OpSTG:       "stg",
	OpSTGM:      "stgm",
	OpSTGP:      "stgp",
	OpSTLLR:     "stllr",
	OpSTLLRB:    "stllrb",
	OpSTLLRH:    "stllrh",
	OpSTLR:      "stlr",
	OpSTLRB:     "stlrb",
	OpSTLRH:     "stlrh",
	OpSTLUR:     "stlur",
	OpSTLURB:    "stlurb",
	OpSTLURH:    "stlurh",
	OpSTLXP:     "stlxp",
	OpSTLXR:     "stlxr",
	OpSTLXRB:    "stlxrb",
	OpSTLXRH:    "stlxrh",
	OpSTNP:      "stnp",
	OpSTP:       "stp",
	OpSTR:       "str",
	OpSTRB:      "strb",
	OpSTRH:      "strh",
	OpSTSET:     "stset",
	OpSTSETB:    "stsetb",
	OpSTSETH:    "stseth",
	OpSTSETL:    "stsetl",
	OpSTSETLB:   "stsetlb",
	OpSTSETLH:   "stsetlh",
	OpSTSMAX:    "stsmax",
	OpSTSMAXB:   "stsmaxb",
	OpSTSMAXH:   "stsmaxh",
	OpSTSMAXL:   "stsmaxl",
	OpSTSMAXLB:  "stsmaxlb",
	OpSTSMAXLH:  "stsmaxlh",
	OpSTSMIN:    "stsmin",
	OpSTSMINB:   "stsminb",
	OpSTSMINH:   "stsminh",
	OpSTSMINL:   "stsminl",
	OpSTSMINLB:  "stsminlb",
	OpSTSMINLH:  "stsminlh",
	OpSTTR:      "sttr",
	OpSTTRB:     "sttrb",
	OpSTTRH:     "sttrh",
	OpSTUMAX:    "stumax",
	OpSTUMAXB:   "stumaxb",
	OpSTUMAXH:   "stumaxh",
	OpSTUMAXL:   "stumaxl",
	OpSTUMAXLB:  "stumaxlb",
	OpSTUMAXLH:  "stumaxlh",
	OpSTUMIN:    "stumin",
	OpSTUMINB:   "stuminb",
	OpSTUMINH:   "stuminh",
	OpSTUMINL:   "stuminl",
	OpSTUMINLB:  "stuminlb",
	OpSTUMINLH:  "stuminlh",
	OpSTUR:      "stur",
	OpSTURB:     "sturb",
	OpSTURH:     "sturh",
	OpSTXP:      "stxp",
	OpSTXR:      "stxr",
	OpSTXRB:     "stxrb",
	OpSTXRH:     "stxrh",
	OpSTZ2G:     "stz2g",
	OpSTZG:      "stzg",
	OpSTZGM:     "stzgm",
	OpSUB:       "sub",
	OpSUBG:      "subg",
	OpSUBHN:     "subhn",
	OpSUBP:      "subp",
	OpSUBPS:     "subps",
	OpSUBS:      "subs",
	OpSUQADD:    "suqadd",
	OpSVC:       "svc",
	OpSWP:       "swp",
	OpSWPA:      "swpa",
	OpSWPAB:     "swpab",
	OpSWPAH:     "swpah",
	OpSWPAL:     "swpal",
	OpSWPALB:    "swpalb",
	OpSWPALH:    "swpalh",
	OpSWPB:      "swpb",
	OpSWPH:      "swph",
	OpSWPL:      "swpl",
	OpSWPLB:     "swplb",
	OpSWPLH:     "swplh",
	OpSXTB:      "sxtb",
	OpSXTH:      "sxth",
	OpSXTL:      "sxtl",
	OpSXTW:      "sxtw",
	OpSYS:       "sys",
	OpSYSL:      "sysl",

	OpTBL:     "tbl",
	OpTBNZ:    "tbnz",
	OpTBX:     "tbx",
	OpTBZ:     "tbz",
	OpTCANCEL: "tcancel",
	OpTCOMMIT: "tcommit",
	OpTLBI:    "tlbi",
	OpTRN1:    "trn1",
	OpTRN2:    "trn2",
	OpTSB:     "tsb",
	OpTST:     "tst",

	OpUABA:    "uaba",
	OpUABAL:   "uabal",
	OpUABD:    "uabd",
	OpUABDL:   "uabdl",
	OpUADALP:  "uadalp",
	OpUADDL:   "uaddl",
	OpUADDLP:  "uaddlp",
	OpUADDLV:  "uaddlv",
	OpUADDW:   "uaddw",
	OpUBFIZ:   "ubfiz",
	OpUBFM:    "ubfm",
	OpUBFX:    "ubfx",
	OpUCVTF:   "ucvtf",
	OpUDF:     "udf",
	OpUDIV:    "udiv",
	OpUDOT:    "udot",
	OpUHADD:   "uhadd",
	OpUHSUB:   "uhsub",
	OpUMADDL:  "umaddl",
	OpUMAX:    "umax",
	OpUMAXP:   "umaxp",
	OpUMAXV:   "umaxv",
	OpUMIN:    "umin",
	OpUMINP:   "uminp",
	OpUMINV:   "uminv",
	OpUMLAL:   "umlal",
	OpUMLSL:   "umlsl",
	OpUMNEGL:  "umnegl",
	OpUMOV:    "umov",
	OpUMSUBL:  "umsubl",
	OpUMULH:   "umulh",
	OpUMULL:   "umull",
	OpUQADD:   "uqadd",
	OpUQRSHL:  "uqrshl",
	OpUQRSHRN: "uqrshrn",
	OpUQSHL:   "uqshl",
	OpUQSHRN:  "uqshrn",
	OpUQSUB:   "uqsub",
	OpUQXTN:   "uqxtn",
	OpURECPE:  "urecpe",
	OpURHADD:  "urhadd",
	OpURSHL:   "urshl",
	OpURSHR:   "urshr",
	OpURSQRTE: "ursqrte",
	OpURSRA:   "ursra",
	OpUSDOT:   "usdot",
	OpUSHL:    "ushl",
	OpUSHLL:   "ushll",
	OpUSHR:    "ushr",
	OpUSQADD:  "usqadd",
	OpUSRA:    "usra",
	OpUSUBL:   "usubl",
	OpUSUBW:   "usubw",
	OpUXTB:    "uxtb",
	OpUXTH:    "uxth",
	OpUXTL:    "uxtl",
	OpUZP1:    "uzp1",
	OpUZP2:    "uzp2",

	OpWFE:  "wfe",
	OpWFET: "wfet",
	OpWFI:  "wfi",
	OpWFIT: "wfit",

	OpXAFLAG:  "xaflag",
	OpXAR:     "xar",
	OpXPACD:   "xpacd",
	OpXPACI:   "xpaci",
	OpXPACLRI: "xpaclri",
	OpXTN:     "xtn",

	OpYIELD: "yield",

	OpZIP1: "zip1",
	OpZIP2: "zip2",
}

// String returns the mnemonic.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "unknown"
}

// condSuffix reports whether the mnemonic is followed by ".<cond>", as in
// b.eq.
func (op Op) condSuffix() bool {
	return op == OpBCOND || op == OpBCCOND
}
