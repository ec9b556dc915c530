package seeding

import "github.com/dalemusser/hydrasite/internal/domain/models"

// SeedProduct is a product together with the slug of the category it belongs to.
type SeedProduct struct {
	CategorySlug string
	Product      models.Product
}

// DefaultServices returns the initial services.
func DefaultServices() []models.Service {
	return []models.Service{
		{
			TitleEN:       "Smart Home",
			TitleAR:       "المنزل الذكي",
			DescriptionEN: "Explore innovative smart home solutions to enhance comfort, security, and energy efficiency with cutting-edge automation technology.",
			DescriptionAR: "اكتشف حلول المنزل الذكي المبتكرة لتعزيز الراحة والأمان وكفاءة الطاقة بتقنية الأتمتة المتطورة.",
			Icon:          "🏠",
			Order:         1,
		},
		{
			TitleEN:       "Automation Development",
			TitleAR:       "تطوير الأتمتة",
			DescriptionEN: "Operation, maintenance and development of water plants with advanced automation systems for optimal efficiency.",
			DescriptionAR: "تشغيل وصيانة وتطوير محطات المياه بأنظمة أتمتة متقدمة لتحقيق كفاءة مثالية.",
			Icon:          "⚙️",
			Order:         2,
		},
		{
			TitleEN:       "SCADA Systems",
			TitleAR:       "أنظمة سكادا",
			DescriptionEN: "Operation, maintenance and development of drainage stations with state-of-the-art SCADA monitoring and control systems.",
			DescriptionAR: "تشغيل وصيانة وتطوير محطات الصرف الصحي بأحدث أنظمة المراقبة والتحكم سكادا.",
			Icon:          "📊",
			Order:         3,
		},
	}
}

// DefaultCategories returns the initial product categories.
func DefaultCategories() []models.ProductCategory {
	return []models.ProductCategory{
		{NameEN: "Automation", NameAR: "الأتمتة", Slug: "automation", Order: 1},
		{NameEN: "Electrical Components", NameAR: "المكونات الكهربائية", Slug: "electrical-components", Order: 2},
		{NameEN: "Low Voltage Panels", NameAR: "لوحات الجهد المنخفض", Slug: "low-voltage-panels", Order: 3},
		{NameEN: "Control Panels", NameAR: "لوحات التحكم", Slug: "control-panels", Order: 4},
		{NameEN: "Equipment & Machinery", NameAR: "المعدات والآلات", Slug: "equipment-machinery", Order: 5},
	}
}

// DefaultProducts returns the initial products keyed by category slug.
func DefaultProducts() []SeedProduct {
	return []SeedProduct{
		{
			CategorySlug: "low-voltage-panels",
			Product: models.Product{
				NameEN:        "Panel Power for Low Voltage",
				NameAR:        "لوحة الطاقة للجهد المنخفض",
				DescriptionEN: "High-quality low voltage power distribution panels",
				DescriptionAR: "لوحات توزيع الطاقة ذات الجهد المنخفض عالية الجودة",
				IsFeatured:    true,
				Order:         1,
			},
		},
		{
			CategorySlug: "electrical-components",
			Product: models.Product{
				NameEN:        "Contactor",
				NameAR:        "كونتاكتور",
				DescriptionEN: "Industrial-grade contactors for reliable switching",
				DescriptionAR: "كونتاكتور صناعي للتبديل الموثوق",
				IsFeatured:    true,
				Order:         2,
			},
		},
		{
			CategorySlug: "automation",
			Product: models.Product{
				NameEN:        "PLC",
				NameAR:        "PLC",
				DescriptionEN: "Advanced programmable logic controllers",
				DescriptionAR: "وحدات تحكم منطقية قابلة للبرمجة متقدمة",
				IsFeatured:    true,
				Order:         3,
			},
		},
	}
}

// DefaultCourses returns the initial training courses.
func DefaultCourses() []models.Course {
	return []models.Course{
		{
			TitleEN:       "PLC Basics",
			TitleAR:       "أساسيات PLC",
			DescriptionEN: "Master the fundamentals of Programmable Logic Controllers",
			DescriptionAR: "إتقان أساسيات وحدات التحكم المنطقية القابلة للبرمجة",
			Duration:      "4 weeks",
			Level:         models.LevelBeginner,
			IsFeatured:    true,
			Icon:          "💻",
			Order:         1,
		},
		{
			TitleEN:       "Technology of Pumps & Compressors",
			TitleAR:       "تكنولوجيا المضخات والضواغط",
			DescriptionEN: "Comprehensive training on industrial pump and compressor systems",
			DescriptionAR: "تدريب شامل على أنظمة المضخات والضواغط الصناعية",
			Duration:      "6 weeks",
			Level:         models.LevelIntermediate,
			IsFeatured:    true,
			Icon:          "⚡",
			Order:         2,
		},
		{
			TitleEN:       "Classic Control",
			TitleAR:       "التحكم الكلاسيكي",
			DescriptionEN: "Learn traditional control systems and their applications",
			DescriptionAR: "تعلم أنظمة التحكم التقليدية وتطبيقاتها",
			Duration:      "3 weeks",
			Level:         models.LevelBeginner,
			IsFeatured:    true,
			Icon:          "🎛️",
			Order:         3,
		},
	}
}

// DefaultSettings returns the initial site settings.
func DefaultSettings() models.SiteSettings {
	return models.SiteSettings{
		CompanyNameEN: models.DefaultCompanyNameEN,
		CompanyNameAR: models.DefaultCompanyNameAR,
		ShortAboutEN:  "HYDRATECH provides high quality services, taking into consideration the time and cost factor and in line with the local market determinants. This is achieved through technical expertise of the management and employees of the company.",
		ShortAboutAR:  "تقدم هيدراتك خدمات عالية الجودة، مع الأخذ في الاعتبار عامل الوقت والتكلفة وبما يتماشى مع محددات السوق المحلية. يتحقق ذلك من خلال الخبرة الفنية للإدارة والموظفين في الشركة.",
		AddressEN:     "53 Gesr El Suez St. - Nozha - Heliopolis - Building 3 C - Second Floor - Apartment 203",
		AddressAR:     "53 شارع جسر السويس - نزهة - مصر الجديدة - مبنى 3 C - الطابق الثاني - شقة 203",
		Email:         "info@hydratech-eg.com",
		Phone1:        "01227226502",
		Phone2:        "0221922715",
		FooterTextEN:  "© Copyrights 2025. All Rights Reserved.",
		FooterTextAR:  "© حقوق النشر 2025. جميع الحقوق محفوظة.",
	}
}

// DefaultPrintProjects returns the initial 3D printing portfolio.
func DefaultPrintProjects() []models.PrintProject {
	return []models.PrintProject{
		{
			TitleEN:       "Custom Industrial Parts",
			TitleAR:       "قطع صناعية مخصصة",
			DescriptionEN: "High-precision 3D printed industrial components and replacement parts",
			DescriptionAR: "مكونات صناعية مطبوعة ثلاثية الأبعاد عالية الدقة وقطع غيار",
			Material:      "ABS, Nylon",
			PrintTime:     "2-48 hours",
			IsFeatured:    true,
			Order:         1,
		},
		{
			TitleEN:       "Prototyping Services",
			TitleAR:       "خدمات النماذج الأولية",
			DescriptionEN: "Rapid prototyping for product development and testing",
			DescriptionAR: "نماذج أولية سريعة لتطوير المنتجات والاختبار",
			Material:      "PLA, PETG",
			PrintTime:     "1-24 hours",
			IsFeatured:    true,
			Order:         2,
		},
		{
			TitleEN:       "Custom Enclosures",
			TitleAR:       "غلافات مخصصة",
			DescriptionEN: "Tailored protective enclosures for electronic equipment",
			DescriptionAR: "غلافات واقية مخصصة للمعدات الإلكترونية",
			Material:      "ABS, PETG",
			PrintTime:     "3-12 hours",
			IsFeatured:    false,
			Order:         3,
		},
	}
}
