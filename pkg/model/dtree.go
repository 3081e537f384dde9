package model

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
)

// ---------------------------
// Types & options
// ---------------------------

// DecisionTreeRegressor is a CART-style regression tree. Splits are chosen
// by variance reduction; leaves predict the mean target of their samples.
type DecisionTreeRegressor struct {
	// Hyperparameters / options
	MaxDepth            int     // maximum depth (root depth = 0). 0 => no limit
	MinSamplesSplit     int     // minimum samples to attempt a split
	MinSamplesLeaf      int     // minimum samples required in each leaf
	MaxFeatures         int     // 0 => use all features, >0 => number of features to sample when looking for split
	MinImpurityDecrease float64 // minimal variance decrease to accept a split
	RandomState         int64   // seed for randomness (feature subsampling)

	// internals
	root      *rtNode
	nFeatures int
}

// rtNode holds a node in the tree.
type rtNode struct {
	// internal node fields
	isLeaf    bool
	feature   int
	threshold float64 // x <= threshold => left
	left      *rtNode
	right     *rtNode

	// leaf data
	n     int
	value float64 // mean target of the samples at this node
}

// TreeOption is functional config for the regressor.
type TreeOption func(*DecisionTreeRegressor)

func WithMaxDepth(d int) TreeOption { return func(t *DecisionTreeRegressor) { t.MaxDepth = d } }
func WithMinSamplesSplit(n int) TreeOption {
	return func(t *DecisionTreeRegressor) { t.MinSamplesSplit = n }
}
func WithMinSamplesLeaf(n int) TreeOption {
	return func(t *DecisionTreeRegressor) { t.MinSamplesLeaf = n }
}
func WithMaxFeatures(k int) TreeOption { return func(t *DecisionTreeRegressor) { t.MaxFeatures = k } }
func WithMinImpurityDecrease(v float64) TreeOption {
	return func(t *DecisionTreeRegressor) { t.MinImpurityDecrease = v }
}
func WithRandomState(seed int64) TreeOption {
	return func(t *DecisionTreeRegressor) { t.RandomState = seed }
}

// NewDecisionTreeRegressor returns a regressor with the defaults used by
// the housing pipeline: depth bound 5 and a fixed seed so repeated fits are
// reproducible.
func NewDecisionTreeRegressor(opts ...TreeOption) *DecisionTreeRegressor {
	t := &DecisionTreeRegressor{
		MaxDepth:            5,
		MinSamplesSplit:     2,
		MinSamplesLeaf:      1,
		MaxFeatures:         0,
		MinImpurityDecrease: 0.0,
		RandomState:         42,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// ---------------------------
// Public API: Fit / Predict / Save-Load
// ---------------------------

// Fit trains the regression tree on X (n x p) and y (n targets).
// Fails if the shapes mismatch or the data contains NaN.
func (t *DecisionTreeRegressor) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("dtree: empty X")
	}
	n := len(X)
	if len(y) != n {
		return errors.New("dtree: X and y length mismatch")
	}
	p := len(X[0])
	if p == 0 {
		return errors.New("dtree: rows have no features")
	}
	for i := range X {
		if len(X[i]) != p {
			return errors.New("dtree: inconsistent number of features in X rows")
		}
		for _, v := range X[i] {
			if math.IsNaN(v) {
				return fmt.Errorf("dtree: NaN feature value at row %d", i)
			}
		}
	}
	for i, v := range y {
		if math.IsNaN(v) {
			return fmt.Errorf("dtree: NaN target value at row %d", i)
		}
	}

	idx := make([]int, n)
	for i := 0; i < n; i++ {
		idx[i] = i
	}

	rnd := rand.New(rand.NewSource(t.RandomState))
	t.nFeatures = p
	t.root = t.buildNode(X, y, idx, 0, p, rnd)
	return nil
}

// Predict returns predicted values for rows in X.
func (t *DecisionTreeRegressor) Predict(X [][]float64) ([]float64, error) {
	if t.root == nil {
		return nil, errors.New("dtree: model not fitted")
	}
	out := make([]float64, len(X))
	for i, row := range X {
		if len(row) != t.nFeatures {
			return nil, fmt.Errorf("dtree: row %d has %d features, model was fitted with %d", i, len(row), t.nFeatures)
		}
		out[i] = t.predictSingle(row)
	}
	return out, nil
}

// MarshalBinary implements encoding.BinaryMarshaler using gob.
func (t *DecisionTreeRegressor) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(t.MaxDepth); err != nil {
		return nil, err
	}
	if err := enc.Encode(t.MinSamplesSplit); err != nil {
		return nil, err
	}
	if err := enc.Encode(t.MinSamplesLeaf); err != nil {
		return nil, err
	}
	if err := enc.Encode(t.MaxFeatures); err != nil {
		return nil, err
	}
	if err := enc.Encode(t.MinImpurityDecrease); err != nil {
		return nil, err
	}
	if err := enc.Encode(t.RandomState); err != nil {
		return nil, err
	}
	if err := enc.Encode(t.nFeatures); err != nil {
		return nil, err
	}
	if err := enc.Encode(flattenTree(t.root)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler using gob.
func (t *DecisionTreeRegressor) UnmarshalBinary(data []byte) error {
	dec := gob.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&t.MaxDepth); err != nil {
		return err
	}
	if err := dec.Decode(&t.MinSamplesSplit); err != nil {
		return err
	}
	if err := dec.Decode(&t.MinSamplesLeaf); err != nil {
		return err
	}
	if err := dec.Decode(&t.MaxFeatures); err != nil {
		return err
	}
	if err := dec.Decode(&t.MinImpurityDecrease); err != nil {
		return err
	}
	if err := dec.Decode(&t.RandomState); err != nil {
		return err
	}
	if err := dec.Decode(&t.nFeatures); err != nil {
		return err
	}
	var flat []flatNode
	if err := dec.Decode(&flat); err != nil {
		return err
	}
	t.root = unflattenTree(flat)
	return nil
}

// ---------------------------
// Tree building
// ---------------------------

// splitResult carries the outcome of the best-split search for one feature.
type splitResult struct {
	gain      float64
	feature   int
	threshold float64
	leftIdx   []int
	rightIdx  []int
}

type pair struct {
	v float64
	i int
}

func (t *DecisionTreeRegressor) buildNode(X [][]float64, y []float64, idx []int, depth, p int, rnd *rand.Rand) *rtNode {
	node := &rtNode{n: len(idx)}

	sum, sumSq := 0.0, 0.0
	for _, ii := range idx {
		v := y[ii]
		sum += v
		sumSq += v * v
	}
	mean := sum / float64(len(idx))
	node.value = mean
	parentImpurity := sumSq/float64(len(idx)) - mean*mean

	// make leaf if pure or too few samples or depth reached
	if parentImpurity <= 0 || (t.MinSamplesSplit > 0 && len(idx) < t.MinSamplesSplit) {
		node.isLeaf = true
		return node
	}
	if t.MaxDepth > 0 && depth >= t.MaxDepth {
		node.isLeaf = true
		return node
	}

	// determine features to try
	featIndices := make([]int, p)
	for j := 0; j < p; j++ {
		featIndices[j] = j
	}
	if t.MaxFeatures > 0 && t.MaxFeatures < p {
		for i := 0; i < p; i++ {
			j := i + rnd.Intn(p-i)
			featIndices[i], featIndices[j] = featIndices[j], featIndices[i]
		}
		featIndices = featIndices[:t.MaxFeatures]
	}

	// Parallel search for the best split of each candidate feature.
	results := make(chan splitResult, len(featIndices))
	var wg sync.WaitGroup
	for _, f := range featIndices {
		wg.Add(1)
		go func(f int) {
			defer wg.Done()
			results <- t.findBestSplitForFeature(X, y, idx, f, parentImpurity)
		}(f)
	}
	wg.Wait()
	close(results)

	// Collect results in feature order so ties resolve the same way on
	// every fit, regardless of goroutine scheduling.
	collected := make([]splitResult, 0, len(featIndices))
	for result := range results {
		collected = append(collected, result)
	}
	sort.Slice(collected, func(a, b int) bool { return collected[a].feature < collected[b].feature })

	bestGain := 0.0
	bestResult := splitResult{feature: -1}
	for _, result := range collected {
		if result.gain > bestGain {
			bestGain = result.gain
			bestResult = result
		}
	}

	if bestResult.feature == -1 || bestGain <= t.MinImpurityDecrease {
		node.isLeaf = true
		return node
	}

	node.isLeaf = false
	node.feature = bestResult.feature
	node.threshold = bestResult.threshold
	node.left = t.buildNode(X, y, bestResult.leftIdx, depth+1, p, rnd)
	node.right = t.buildNode(X, y, bestResult.rightIdx, depth+1, p, rnd)
	return node
}

// findBestSplitForFeature scans the sorted values of feature f for the
// threshold maximizing variance reduction, using running sums so the scan
// is a single pass.
func (t *DecisionTreeRegressor) findBestSplitForFeature(X [][]float64, y []float64, idx []int, f int, parentImpurity float64) splitResult {
	result := splitResult{gain: 0.0, feature: -1}

	tmp := make([]pair, 0, len(idx))
	for _, ii := range idx {
		tmp = append(tmp, pair{X[ii][f], ii})
	}
	sort.Slice(tmp, func(a, b int) bool { return tmp[a].v < tmp[b].v })

	n := len(tmp)
	totalSum, totalSq := 0.0, 0.0
	for _, pv := range tmp {
		v := y[pv.i]
		totalSum += v
		totalSq += v * v
	}

	leftSum, leftSq := 0.0, 0.0
	bestSplit := -1
	for s := 1; s < n; s++ {
		v := y[tmp[s-1].i]
		leftSum += v
		leftSq += v * v

		// only split between distinct values
		if tmp[s].v == tmp[s-1].v {
			continue
		}
		nl, nr := s, n-s
		if nl < t.MinSamplesLeaf || nr < t.MinSamplesLeaf {
			continue
		}

		meanL := leftSum / float64(nl)
		varL := leftSq/float64(nl) - meanL*meanL
		rightSum := totalSum - leftSum
		rightSq := totalSq - leftSq
		meanR := rightSum / float64(nr)
		varR := rightSq/float64(nr) - meanR*meanR

		weighted := (float64(nl)/float64(n))*varL + (float64(nr)/float64(n))*varR
		gain := parentImpurity - weighted
		if gain > result.gain {
			result.gain = gain
			result.feature = f
			result.threshold = (tmp[s-1].v + tmp[s].v) / 2.0
			bestSplit = s
		}
	}

	if bestSplit >= 0 {
		result.leftIdx = indicesFromPairs(tmp[:bestSplit])
		result.rightIdx = indicesFromPairs(tmp[bestSplit:])
	}
	return result
}

func indicesFromPairs(pairs []pair) []int {
	out := make([]int, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, p.i)
	}
	return out
}

// ---------------------------
// Prediction helper
// ---------------------------

func (t *DecisionTreeRegressor) predictSingle(x []float64) float64 {
	node := t.root
	for !node.isLeaf {
		val := x[node.feature]
		if math.IsNaN(val) {
			// missing: choose branch with more samples (heuristic)
			if node.left.n >= node.right.n {
				node = node.left
			} else {
				node = node.right
			}
			continue
		}
		if val <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node.value
}

// ---------------------------
// Gob-friendly flat representation
// ---------------------------

// flatNode is the gob encoding of an rtNode; Left/Right are indexes into
// the flattened slice, -1 for none.
type flatNode struct {
	IsLeaf    bool
	Feature   int
	Threshold float64
	Left      int
	Right     int
	N         int
	Value     float64
}

func flattenTree(root *rtNode) []flatNode {
	var flat []flatNode
	var walk func(n *rtNode) int
	walk = func(n *rtNode) int {
		if n == nil {
			return -1
		}
		at := len(flat)
		flat = append(flat, flatNode{
			IsLeaf:    n.isLeaf,
			Feature:   n.feature,
			Threshold: n.threshold,
			Left:      -1,
			Right:     -1,
			N:         n.n,
			Value:     n.value,
		})
		flat[at].Left = walk(n.left)
		flat[at].Right = walk(n.right)
		return at
	}
	walk(root)
	return flat
}

func unflattenTree(flat []flatNode) *rtNode {
	if len(flat) == 0 {
		return nil
	}
	var build func(at int) *rtNode
	build = func(at int) *rtNode {
		if at < 0 {
			return nil
		}
		fn := flat[at]
		return &rtNode{
			isLeaf:    fn.IsLeaf,
			feature:   fn.Feature,
			threshold: fn.Threshold,
			left:      build(fn.Left),
			right:     build(fn.Right),
			n:         fn.N,
			value:     fn.Value,
		}
	}
	return build(0)
}
