package impl

import "pharmacy/internal/domain/entity"

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }

// seedCatalog is the built-in catalog served while no remote store is
// reachable, so the storefront never renders empty on first visit.
func seedCatalog() []*entity.Product {
	return []*entity.Product{
		{
			ID: "1", Name: "بانادول إكسترا", NameEn: "Panadol Extra",
			Price: 28, OriginalPrice: ptrF(35), Category: entity.CategoryPainkillers,
			Description: "مسكن قوي للصداع والآلام العامة مع الكافيين",
			Image:       "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?w=500&h=500&fit=crop&crop=center",
			Available:   true, Featured: true, Bestseller: true,
			Discount: ptrI(20), Rating: ptrF(4.8), Reviews: ptrI(234),
		},
		{
			ID: "2", Name: "أدفيل", NameEn: "Advil",
			Price: 42, Category: entity.CategoryPainkillers,
			Description: "مضاد للالتهابات ومسكن للآلام",
			Image:       "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=500&h=500&fit=crop&crop=center",
			Available:   true, Rating: ptrF(4.6), Reviews: ptrI(189),
		},
		{
			ID: "3", Name: "فيتامين سي 1000", NameEn: "Vitamin C 1000",
			Price: 85, Category: entity.CategoryVitamins,
			Description: "فيتامين سي عالي التركيز لتقوية جهاز المناعة",
			Image:       "https://images.unsplash.com/photo-1550572017-edd951aa8702?w=500&h=500&fit=crop&crop=center",
			Available:   true, Featured: true, Rating: ptrF(4.9), Reviews: ptrI(456),
		},
		{
			ID: "4", Name: "فيتامين د 5000", NameEn: "Vitamin D 5000",
			Price: 95, OriginalPrice: ptrF(120), Category: entity.CategoryVitamins,
			Description: "فيتامين د لتقوية العظام والأسنان",
			Image:       "https://images.unsplash.com/photo-1607619056574-7b8d3ee536b2?w=500&h=500&fit=crop&crop=center",
			Available:   true, Bestseller: true,
			Discount: ptrI(21), Rating: ptrF(4.7), Reviews: ptrI(298),
		},
		{
			ID: "5", Name: "أوميجا 3", NameEn: "Omega 3",
			Price: 120, Category: entity.CategorySupplements,
			Description: "أحماض أوميجا 3 الدهنية لصحة القلب والدماغ",
			Image:       "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=500&h=500&fit=crop&crop=center",
			Available:   true, Featured: true, Rating: ptrF(4.8), Reviews: ptrI(367),
		},
		{
			ID: "6", Name: "بروتين مصل اللبن", NameEn: "Whey Protein",
			Price: 480, OriginalPrice: ptrF(550), Category: entity.CategorySupplements,
			Description: "بروتين عالي الجودة لبناء العضلات",
			Image:       "https://images.unsplash.com/photo-1593095948071-474c5cc2989d?w=500&h=500&fit=crop&crop=center",
			Available:   true, Discount: ptrI(13), Rating: ptrF(4.5), Reviews: ptrI(143),
		},
		{
			ID: "7", Name: "كومتريكس", NameEn: "Comtrex",
			Price: 35, Category: entity.CategoryCold,
			Description: "علاج شامل لأعراض البرد والإنفلونزا",
			Image:       "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=500&h=500&fit=crop&crop=center",
			Available:   true, Rating: ptrF(4.4), Reviews: ptrI(176),
		},
		{
			ID: "8", Name: "فيكس", NameEn: "Vicks",
			Price: 28, Category: entity.CategoryCold,
			Description: "مرهم للتدليك لعلاج احتقان الصدر",
			Image:       "https://images.unsplash.com/photo-1631549916768-4119b2e5f926?w=500&h=500&fit=crop&crop=center",
			Available:   true, Bestseller: true, Rating: ptrF(4.6), Reviews: ptrI(203),
		},
		{
			ID: "9", Name: "شراب الأطفال للسعال", NameEn: "Kids Cough Syrup",
			Price: 45, Category: entity.CategoryBaby,
			Description: "شراب آمن للأطفال لعلاج السعال",
			Image:       "https://images.unsplash.com/photo-1559757175-0eb30cd8c063?w=500&h=500&fit=crop&crop=center",
			Available:   true, Rating: ptrF(4.7), Reviews: ptrI(134),
		},
		{
			ID: "10", Name: "فيتامينات الأطفال", NameEn: "Kids Vitamins",
			Price: 65, Category: entity.CategoryBaby,
			Description: "فيتامينات متعددة للأطفال بطعم الفواكه",
			Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=500&h=500&fit=crop&crop=center",
			Available:   true, Featured: true, Rating: ptrF(4.8), Reviews: ptrI(287),
		},
		{
			ID: "11", Name: "كريم مرطب للوجه", NameEn: "Face Moisturizer",
			Price: 85, Category: entity.CategorySkincare,
			Description: "كريم مرطب للبشرة الحساسة",
			Image:       "https://images.unsplash.com/photo-1556228453-efd6c1ff04f6?w=500&h=500&fit=crop&crop=center",
			Available:   true, Rating: ptrF(4.5), Reviews: ptrI(198),
		},
		{
			ID: "12", Name: "واقي الشمس SPF 50", NameEn: "Sunscreen SPF 50",
			Price: 95, OriginalPrice: ptrF(110), Category: entity.CategorySkincare,
			Description: "واقي شمس عالي الحماية للبشرة",
			Image:       "https://images.unsplash.com/photo-1556228578-8c89e6adf883?w=500&h=500&fit=crop&crop=center",
			Available:   true, Discount: ptrI(14), Rating: ptrF(4.6), Reviews: ptrI(167),
		},
		{
			ID: "13", Name: "جهاز قياس الضغط", NameEn: "Blood Pressure Monitor",
			Price: 350, Category: entity.CategoryOther,
			Description: "جهاز رقمي لقياس ضغط الدم",
			Image:       "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=500&h=500&fit=crop&crop=center",
			Available:   true, Featured: true, Rating: ptrF(4.7), Reviews: ptrI(89),
		},
		{
			ID: "14", Name: "ميزان حرارة رقمي", NameEn: "Digital Thermometer",
			Price: 75, Category: entity.CategoryOther,
			Description: "ميزان حرارة دقيق وسريع",
			Image:       "https://images.unsplash.com/photo-1559081842-f8ca7a929d3f?w=500&h=500&fit=crop&crop=center",
			Available:   true, Rating: ptrF(4.4), Reviews: ptrI(156),
		},
		{
			ID: "15", Name: "كالسيوم + ماغنيسيوم", NameEn: "Calcium + Magnesium",
			Price: 110, Category: entity.CategorySupplements,
			Description: "مكمل الكالسيوم والماغنيسيوم لصحة العظام",
			Image:       "https://images.unsplash.com/photo-1550572017-edd951aa8702?w=500&h=500&fit=crop&crop=center",
			Available:   true, Rating: ptrF(4.6), Reviews: ptrI(234),
		},
		{
			ID: "16", Name: "زنك 50 مج", NameEn: "Zinc 50mg",
			Price: 65, Category: entity.CategoryVitamins,
			Description: "مكمل الزنك لتقوية المناعة",
			Image:       "https://images.unsplash.com/photo-1607619056574-7b8d3ee536b2?w=500&h=500&fit=crop&crop=center",
			Available:   true, Bestseller: true, Rating: ptrF(4.8), Reviews: ptrI(189),
		},
	}
}
