package database

import (
	"tasmeem_backend/internal/logger"
	"tasmeem_backend/internal/models"
	"tasmeem_backend/internal/repositories"

	"gorm.io/gorm"
)

// SeedCatalog inserts the software and service catalogs when their tables
// are empty. Safe to call on every startup.
func SeedCatalog(db *gorm.DB) error {
	softwareRepo := repositories.NewSoftwareRepository()
	serviceRepo := repositories.NewServiceRepository()

	softwareCount, err := softwareRepo.Count(db)
	if err != nil {
		return err
	}
	if softwareCount == 0 {
		for i := range softwareSeed {
			if err := softwareRepo.Create(db, &softwareSeed[i]); err != nil {
				return err
			}
		}
		logger.Info("Seeded software catalog", "count", len(softwareSeed))
	}

	serviceCount, err := serviceRepo.Count(db)
	if err != nil {
		return err
	}
	if serviceCount == 0 {
		for i := range serviceSeed {
			if err := serviceRepo.Create(db, &serviceSeed[i]); err != nil {
				return err
			}
		}
		logger.Info("Seeded service catalog", "count", len(serviceSeed))
	}

	return nil
}

var softwareSeed = []models.DesignSoftware{
	{Name: "Adobe Photoshop", NameAr: "أدوبي فوتوشوب", Category: "photo"},
	{Name: "Adobe Illustrator", NameAr: "أدوبي إليستريتور", Category: "photo"},
	{Name: "Adobe InDesign", NameAr: "أدوبي إن ديزاين", Category: "photo"},
	{Name: "Adobe Premiere Pro", NameAr: "أدوبي بريمير برو", Category: "video"},
	{Name: "Adobe After Effects", NameAr: "أدوبي أفتر إفكتس", Category: "video"},
	{Name: "Final Cut Pro", NameAr: "فاينال كت برو", Category: "video"},
	{Name: "DaVinci Resolve", NameAr: "دافنشي ريزولف", Category: "video"},
	{Name: "Figma", NameAr: "فيجما", Category: "ui"},
	{Name: "Sketch", NameAr: "سكيتش", Category: "ui"},
	{Name: "Adobe XD", NameAr: "أدوبي إكس دي", Category: "ui"},
	{Name: "Blender", NameAr: "بلندر", Category: "3d"},
	{Name: "Cinema 4D", NameAr: "سينما فور دي", Category: "3d"},
	{Name: "Maya", NameAr: "مايا", Category: "3d"},
	{Name: "3ds Max", NameAr: "ثري دي إس ماكس", Category: "3d"},
	{Name: "CorelDRAW", NameAr: "كوريل درو", Category: "photo"},
	{Name: "Canva", NameAr: "كانفا", Category: "photo"},
}

// Prices are in halalas (minor SAR units).
var serviceSeed = []models.Service{
	{
		Name:          "Logo Design",
		NameAr:        "تصميم شعار",
		Description:   "Professional logo design for your brand identity",
		DescriptionAr: "تصميم شعار احترافي لهوية علامتك التجارية",
		Price:         50000,
		Category:      "photo",
		IsActive:      true,
	},
	{
		Name:          "Business Card Design",
		NameAr:        "تصميم بطاقة عمل",
		Description:   "Custom business card design with modern aesthetics",
		DescriptionAr: "تصميم بطاقة عمل مخصصة بجماليات عصرية",
		Price:         15000,
		Category:      "photo",
		IsActive:      true,
	},
	{
		Name:          "Social Media Post Design",
		NameAr:        "تصميم منشور لوسائل التواصل",
		Description:   "Eye-catching social media graphics for your campaigns",
		DescriptionAr: "رسومات جذابة لوسائل التواصل الاجتماعي لحملاتك",
		Price:         8000,
		Category:      "photo",
		IsActive:      true,
	},
	{
		Name:          "Video Editing",
		NameAr:        "مونتاج فيديو",
		Description:   "Professional video editing with effects and transitions",
		DescriptionAr: "مونتاج فيديو احترافي مع المؤثرات والانتقالات",
		Price:         30000,
		Category:      "video",
		IsActive:      true,
	},
	{
		Name:          "Motion Graphics",
		NameAr:        "موشن جرافيك",
		Description:   "Animated graphics and visual effects for videos",
		DescriptionAr: "رسومات متحركة ومؤثرات بصرية للفيديوهات",
		Price:         45000,
		Category:      "video",
		IsActive:      true,
	},
	{
		Name:          "UI/UX Design",
		NameAr:        "تصميم واجهة المستخدم",
		Description:   "User interface and experience design for apps and websites",
		DescriptionAr: "تصميم واجهة وتجربة المستخدم للتطبيقات والمواقع",
		Price:         80000,
		Category:      "ui",
		IsActive:      true,
	},
	{
		Name:          "3D Modeling",
		NameAr:        "نمذجة ثلاثية الأبعاد",
		Description:   "3D models for products, characters, and environments",
		DescriptionAr: "نماذج ثلاثية الأبعاد للمنتجات والشخصيات والبيئات",
		Price:         100000,
		Category:      "3d",
		IsActive:      true,
	},
	{
		Name:          "Banner Design",
		NameAr:        "تصميم بانر",
		Description:   "Web banners and advertising graphics",
		DescriptionAr: "بانرات الويب والرسومات الإعلانية",
		Price:         12000,
		Category:      "photo",
		IsActive:      true,
	},
}
