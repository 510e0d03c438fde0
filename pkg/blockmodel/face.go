package blockmodel

// FaceDir identifies one of the six axis-aligned face directions of a block.
type FaceDir uint8

const (
	FacePosX FaceDir = iota
	FacePosY
	FacePosZ
	FaceNegX
	FaceNegY
	FaceNegZ

	// FaceCount is the number of face directions.
	FaceCount = 6
)

// Directions lists all face directions in a stable order.
var Directions = [FaceCount]FaceDir{FacePosX, FacePosY, FacePosZ, FaceNegX, FaceNegY, FaceNegZ}

// Opposite returns the direction pointing the other way along the same axis.
func (d FaceDir) Opposite() FaceDir {
	return (d + 3) % FaceCount
}

// Negative reports whether the direction is the negative member of its axis.
func (d FaceDir) Negative() bool {
	return d >= FaceNegX
}

// Axis returns the axis index of the direction (0=x, 1=y, 2=z).
func (d FaceDir) Axis() int {
	return int(d % 3)
}

// Normal returns the unit normal of the direction as integer components.
func (d FaceDir) Normal() [3]int {
	var n [3]int
	if d.Negative() {
		n[d.Axis()] = -1
	} else {
		n[d.Axis()] = 1
	}
	return n
}

func (d FaceDir) String() string {
	switch d {
	case FacePosX:
		return "pos_x"
	case FacePosY:
		return "pos_y"
	case FacePosZ:
		return "pos_z"
	case FaceNegX:
		return "neg_x"
	case FaceNegY:
		return "neg_y"
	case FaceNegZ:
		return "neg_z"
	}
	return "invalid"
}
