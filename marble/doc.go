// Package marble plays the elves' marble game on top of ring.Ring.
//
// Rules:
//
//	Marble 0 starts alone in the circle and is the current marble. Players
//	take turns placing marbles 1, 2, 3, ... in order:
//
//	  - Normally the marble goes between the marbles 1 and 2 positions
//	    clockwise of the current one, and becomes current.
//	  - If the marble's number is a multiple of 23 it is kept instead. The
//	    marble 7 positions counter-clockwise is removed too; the player
//	    scores both, and the marble clockwise of the removed one becomes
//	    current.
//
//	The answer is the highest score once the last marble is played.
//
// Input:
//
//	"<players> players; last marble is worth <points> points"
//
// Complexity:
//
//	Play is O(LastMarble) time: every move walks at most 7 links.
//	Memory is O(LastMarble) for the ring arena, preallocated up front.
//
// Errors:
//
//   - ErrBadInput: malformed input line, fewer than one player, a negative
//     last marble, or a non-positive scale factor.
package marble
