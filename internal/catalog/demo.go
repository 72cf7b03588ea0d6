package catalog

// Demo returns the built-in demo menu used by the CLI simulator and tests
// when no catalog file is configured.
func Demo() *Snapshot {
	sideGroup := OptionGroup{
		ID:           1,
		Name:         "사이드",
		Required:     true,
		MaxSelection: 1,
		Options: []Option{
			{ID: 11, Name: "프렌치프라이(R)", Price: 0, IsDefault: true},
			{ID: 12, Name: "프렌치프라이(L)", Price: 500},
			{ID: 13, Name: "어니언링", Price: 500},
			{ID: 14, Name: "치즈스틱", Price: 1000},
		},
	}
	drinkGroup := OptionGroup{
		ID:           2,
		Name:         "음료",
		Required:     true,
		MaxSelection: 1,
		Options: []Option{
			{ID: 21, Name: "코카콜라(R)", Price: 0, IsDefault: true},
			{ID: 22, Name: "코카콜라(L)", Price: 500},
			{ID: 23, Name: "사이다(R)", Price: 0},
			{ID: 24, Name: "사이다(L)", Price: 500},
		},
	}

	products := []Product{
		{
			ID: 1, Name: "와퍼", EngName: "Whopper",
			Description: "불에 직접 구운 와퍼", EngDescription: "Flame-grilled Whopper",
			Price: 6500, Type: TypeSingle, CategoryID: 1,
		},
		{
			ID: 2, Name: "와퍼 세트", EngName: "Whopper Set",
			Description: "와퍼 + 사이드 + 음료", EngDescription: "Whopper + side + drink",
			Price: 8900, Type: TypeSet, CategoryID: 1,
			OptionGroups: []OptionGroup{sideGroup, drinkGroup},
		},
		{
			ID: 3, Name: "불고기 와퍼", EngName: "Bulgogi Whopper",
			Description: "한국인이 좋아하는 불고기 맛", EngDescription: "Korean bulgogi flavor",
			Price: 7000, Type: TypeSingle, CategoryID: 1,
		},
		{
			ID: 4, Name: "불고기 와퍼 세트", EngName: "Bulgogi Whopper Set",
			Description: "불고기 와퍼 + 사이드 + 음료", EngDescription: "Bulgogi Whopper + side + drink",
			Price: 9400, Type: TypeSet, CategoryID: 1,
			OptionGroups: []OptionGroup{sideGroup, drinkGroup},
		},
		{
			ID: 5, Name: "치킨버거", EngName: "Chicken Burger",
			Description: "바삭한 치킨 패티", EngDescription: "Crispy chicken patty",
			Price: 5500, Type: TypeSingle, CategoryID: 2,
		},
		{
			ID: 6, Name: "치킨버거 세트", EngName: "Chicken Burger Set",
			Price: 7900, Type: TypeSet, CategoryID: 2,
			OptionGroups: []OptionGroup{sideGroup, drinkGroup},
		},
	}

	categories := []Category{
		{ID: 1, Name: "버거", EngName: "Burgers"},
		{ID: 2, Name: "치킨", EngName: "Chicken"},
		{ID: 3, Name: "사이드", EngName: "Sides"},
		{ID: 4, Name: "음료", EngName: "Drinks"},
	}

	return NewSnapshot(products, categories)
}
