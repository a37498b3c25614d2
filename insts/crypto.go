package insts

// decodeCryptoAES decodes AESE, AESD, AESMC and AESIMC.
// Format: 01001110 | size | 10100 | opcode | 10 | Rn | Rd
func decodeCryptoAES(d *Decoder, b *builder) error {
	opcode := b.bits("opcode", 12, 16)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if opcode < 0b00100 || opcode > 0b00111 {
		return errUnallocated
	}
	b.setOp([4]Op{OpAESE, OpAESD, OpAESMC, OpAESIMC}[opcode-0b00100])
	b.argList(vreg(rd, Arr16B), vreg(rn, Arr16B))
	return nil
}

// decodeCryptoSHA3Reg decodes the three register SHA1 and SHA256
// instructions.
// Format: 01011110 | size | 0 | Rm | 0 | opcode | 00 | Rn | Rd
func decodeCryptoSHA3Reg(d *Decoder, b *builder) error {
	size := b.bits("size", 22, 23)
	rm := b.bits("Rm", 16, 20)
	opcode := b.bits("opcode", 12, 14)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if size != 0 {
		return errUnallocated
	}

	switch opcode {
	case 0b000, 0b001, 0b010:
		b.setOp([3]Op{OpSHA1C, OpSHA1P, OpSHA1M}[opcode])
		b.argList(fpr(rd, 128), fpr(rn, 32), vreg(rm, Arr4S))
	case 0b100, 0b101:
		b.setOp([2]Op{OpSHA256H, OpSHA256H2}[opcode&1])
		b.argList(fpr(rd, 128), fpr(rn, 128), vreg(rm, Arr4S))
	case 0b011, 0b110:
		if opcode == 0b011 {
			b.setOp(OpSHA1SU0)
		} else {
			b.setOp(OpSHA256SU1)
		}
		b.argList(vreg(rd, Arr4S), vreg(rn, Arr4S), vreg(rm, Arr4S))
	default:
		return errUnallocated
	}
	return nil
}

// decodeCryptoSHA2Reg decodes SHA1H, SHA1SU1 and SHA256SU0.
// Format: 01011110 | size | 10100 | opcode | 10 | Rn | Rd
func decodeCryptoSHA2Reg(d *Decoder, b *builder) error {
	size := b.bits("size", 22, 23)
	opcode := b.bits("opcode", 12, 16)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if size != 0 {
		return errUnallocated
	}

	switch opcode {
	case 0b00000:
		b.setOp(OpSHA1H)
		b.argList(fpr(rd, 32), fpr(rn, 32))
	case 0b00001, 0b00010:
		b.setOp([2]Op{OpSHA1SU1, OpSHA256SU0}[opcode-1])
		b.argList(vreg(rd, Arr4S), vreg(rn, Arr4S))
	default:
		return errUnallocated
	}
	return nil
}

// decodeCryptoSHA512 routes the SHA512, SHA3, SM3 and SM4 encodings.
func decodeCryptoSHA512(d *Decoder, b *builder) error {
	word := b.word
	switch {
	case word&0xFFE0B000 == 0xCE608000:
		return decodeCryptoSHA512ThreeReg(d, b)
	case word&0xFFFFF000 == 0xCEC08000:
		return decodeCryptoSHA512TwoReg(d, b)
	case word&0xFF808000 == 0xCE000000:
		return decodeCryptoFourReg(d, b)
	case word&0xFFE00000 == 0xCE800000:
		return decodeCryptoXAR(d, b)
	}
	return errUnallocated
}

// decodeCryptoSHA512ThreeReg decodes SHA512H, SHA512H2, SHA512SU1, RAX1,
// SM3PARTW1, SM3PARTW2 and SM4EKEY.
// Format: 11001110011 | Rm | 1 | O | 00 | opcode | Rn | Rd
func decodeCryptoSHA512ThreeReg(d *Decoder, b *builder) error {
	rm := b.bits("Rm", 16, 20)
	o := b.bit("O", 14)
	opcode := b.bits("opcode", 10, 11)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	switch {
	case o == 0 && opcode < 0b10:
		b.setOp([2]Op{OpSHA512H, OpSHA512H2}[opcode])
		b.argList(fpr(rd, 128), fpr(rn, 128), vreg(rm, Arr2D))
	case o == 0:
		b.setOp([2]Op{OpSHA512SU1, OpRAX1}[opcode&1])
		b.argList(vreg(rd, Arr2D), vreg(rn, Arr2D), vreg(rm, Arr2D))
	case opcode < 0b11:
		b.setOp([3]Op{OpSM3PARTW1, OpSM3PARTW2, OpSM4EKEY}[opcode])
		b.argList(vreg(rd, Arr4S), vreg(rn, Arr4S), vreg(rm, Arr4S))
	default:
		return errUnallocated
	}
	return nil
}

// decodeCryptoSHA512TwoReg decodes SHA512SU0 and SM4E.
// Format: 11001110110000001000 | opcode | Rn | Rd
func decodeCryptoSHA512TwoReg(d *Decoder, b *builder) error {
	opcode := b.bits("opcode", 10, 11)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	switch opcode {
	case 0b00:
		b.setOp(OpSHA512SU0)
		b.argList(vreg(rd, Arr2D), vreg(rn, Arr2D))
	case 0b01:
		b.setOp(OpSM4E)
		b.argList(vreg(rd, Arr4S), vreg(rn, Arr4S))
	default:
		return errUnallocated
	}
	return nil
}

// decodeCryptoFourReg decodes EOR3, BCAX and SM3SS1.
// Format: 110011100 | Op0 | Rm | 0 | Ra | Rn | Rd
func decodeCryptoFourReg(d *Decoder, b *builder) error {
	op0 := b.bits("Op0", 21, 22)
	rm := b.bits("Rm", 16, 20)
	ra := b.bits("Ra", 10, 14)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	arr := Arr16B
	switch op0 {
	case 0b00:
		b.setOp(OpEOR3)
	case 0b01:
		b.setOp(OpBCAX)
	case 0b10:
		b.setOp(OpSM3SS1)
		arr = Arr4S
	default:
		return errUnallocated
	}
	b.argList(vreg(rd, arr), vreg(rn, arr), vreg(rm, arr), vreg(ra, arr))
	return nil
}

// decodeCryptoXAR decodes XAR.
// Format: 11001110100 | Rm | imm6 | Rn | Rd
func decodeCryptoXAR(d *Decoder, b *builder) error {
	rm := b.bits("Rm", 16, 20)
	imm6 := b.bits("imm6", 10, 15)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	b.setOp(OpXAR)
	b.argList(vreg(rd, Arr2D), vreg(rn, Arr2D), vreg(rm, Arr2D),
		Immediate{Kind: ImmBitPos, Value: uint64(imm6)})
	return nil
}
