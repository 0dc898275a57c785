// Package kenburns synthesizes slow pan and zoom motion for still images as
// two-frame keyframe series.
package kenburns
