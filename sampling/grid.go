package sampling

// gridIndices decomposes a linear cursor into a (layer, direction) pair on a
// layerCount x outerLayerSampleCount polar grid. The layer index is the
// fast-varying component: consecutive cursors cycle through all speed rings
// at one direction before the direction advances.
//
// Both samplers share this decomposition so their grids cannot drift apart.
func gridIndices(cursor, layerCount, outerLayerSampleCount int) (layerIdx, directionIdx int) {
	layerIdx = cursor % layerCount
	directionIdx = (cursor / layerCount) % outerLayerSampleCount
	return layerIdx, directionIdx
}
