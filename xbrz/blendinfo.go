package xbrz

// blendType is the strength of a corner blend. It must fit into two bits.
type blendType uint8

const (
	blendNone     blendType = iota // do not blend
	blendNormal                    // a normal indication to blend
	blendDominant                  // a strong indication to blend
)

// blendInfo packs one blendType per corner of a source pixel:
//
//	bits 0-1: top-left
//	bits 2-3: top-right
//	bits 4-5: bottom-right
//	bits 6-7: bottom-left
type blendInfo uint8

func (b blendInfo) topL() blendType    { return blendType(b & 0x3) }
func (b blendInfo) topR() blendType    { return blendType((b >> 2) & 0x3) }
func (b blendInfo) bottomR() blendType { return blendType((b >> 4) & 0x3) }
func (b blendInfo) bottomL() blendType { return blendType((b >> 6) & 0x3) }

func (b blendInfo) setTopL(t blendType) blendInfo    { return b | blendInfo(t) }
func (b blendInfo) setTopR(t blendType) blendInfo    { return b | blendInfo(t)<<2 }
func (b blendInfo) setBottomR(t blendType) blendInfo { return b | blendInfo(t)<<4 }
func (b blendInfo) setBottomL(t blendType) blendInfo { return b | blendInfo(t)<<6 }

// rotate turns the corner fields clockwise by rot quarter turns, so that the
// corner seen as bottom-right in the rotated kernel is read by bottomR.
func (b blendInfo) rotate(rot rotation) blendInfo {
	l := uint(rot) << 1
	return b<<l | b>>(8-l)
}
