package snake

import "errors"

// ErrUnrotatedHead is returned by Head.RotateTo when the head has never
// changed direction: there is no previous direction to rotate about. The
// solver hits this only while probing alternatives at the very first chain
// position and treats it as "no solution exists for this starting head",
// not as a fault.
var ErrUnrotatedHead = errors.New("head has no previous direction to rotate about")
