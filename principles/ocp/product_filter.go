package ocp

// ProductFilter 反例：每来一个新需求就得修改这个类型，条件之间大量重复
type ProductFilter struct{}

func (f ProductFilter) ByColor(items []*Product, color Color) []*Product {
	result := make([]*Product, 0, len(items))
	for _, item := range items {
		if item.Color == color {
			result = append(result, item)
		}
	}
	return result
}

func (f ProductFilter) BySize(items []*Product, size Size) []*Product {
	result := make([]*Product, 0, len(items))
	for _, item := range items {
		if item.Size == size {
			result = append(result, item)
		}
	}
	return result
}

func (f ProductFilter) BySizeAndColor(items []*Product, size Size, color Color) []*Product {
	result := make([]*Product, 0, len(items))
	for _, item := range items {
		if item.Size == size && item.Color == color {
			result = append(result, item)
		}
	}
	return result
}
