package scalelabel

import "fmt"

type Index struct {
	values []*ScaleLabel
	byName map[string]*ScaleLabel
}

func NewIndex() *Index {
	return &Index{byName: make(map[string]*ScaleLabel)}
}

func (idx *Index) Add(s *ScaleLabel) error {
	if _, ok := idx.byName[s.Name()]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, s.Name())
	}
	idx.values = append(idx.values, s)
	idx.byName[s.Name()] = s
	return nil
}

func (idx *Index) AddMany(scales ...*ScaleLabel) error {
	for _, s := range scales {
		if err := idx.Add(s); err != nil {
			return err
		}
	}
	return nil
}

func (idx *Index) ByName(name string) (*ScaleLabel, bool) {
	s, ok := idx.byName[name]
	return s, ok
}

// Get is ByName for callers that treat a missing label as a lookup failure.
func (idx *Index) Get(name string) (*ScaleLabel, error) {
	s, ok := idx.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScaleLabel, name)
	}
	return s, nil
}

func (idx *Index) Values() []*ScaleLabel {
	res := make([]*ScaleLabel, len(idx.values))
	copy(res, idx.values)
	return res
}

func (idx *Index) Names() []string {
	res := make([]string, 0, len(idx.values))
	for _, s := range idx.values {
		res = append(res, s.Name())
	}
	return res
}

func (idx *Index) Len() int {
	return len(idx.values)
}
