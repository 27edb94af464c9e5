package database

// demoCatalog is the inventory of Demo Laptop Shop. Product and brand names
// here are the same keywords the SQL generation prompt enumerates.
var demoCatalog = []Laptop{
	{ProductName: `Latitude 14" Chromebook`, Brand: "Dell", Price: 419.00, YearOfRelease: 2022, Storage: "64GB eMMC", Memory: "8GB", MemoryType: "LPDDR4x", WeightKg: 1.54, GPU: "Intel UHD Graphics", GraphicsCardType: "integrated", ScreenResolution: "1920x1080", ProcessorModel: "Intel Celeron N4500", WarrantyYears: 1},
	{ProductName: `MacBook Pro 13.3"`, Brand: "Apple", Price: 1299.00, YearOfRelease: 2022, Storage: "256GB SSD", Memory: "8GB", MemoryType: "Unified", WeightKg: 1.4, GPU: "Apple M2 10-core", GraphicsCardType: "integrated", ScreenResolution: "2560x1600", ProcessorModel: "Apple M2", WarrantyYears: 1},
	{ProductName: `MacBook Air 15"`, Brand: "Apple", Price: 1099.00, YearOfRelease: 2023, Storage: "256GB SSD", Memory: "8GB", MemoryType: "Unified", WeightKg: 1.51, GPU: "Apple M2 10-core", GraphicsCardType: "integrated", ScreenResolution: "2880x1864", ProcessorModel: "Apple M2", WarrantyYears: 1},
	{ProductName: "Vivobook Pro 16X", Brand: "ASUS", Price: 1399.99, YearOfRelease: 2023, Storage: "1TB SSD", Memory: "16GB", MemoryType: "DDR5", WeightKg: 1.9, GPU: "NVIDIA GeForce RTX 4060", GraphicsCardType: "dedicated", ScreenResolution: "3200x2000", ProcessorModel: "Intel Core i9-13900H", WarrantyYears: 2},
	{ProductName: `Vivobook Go 14"`, Brand: "ASUS", Price: 379.99, YearOfRelease: 2023, Storage: "128GB SSD", Memory: "8GB", MemoryType: "LPDDR5", WeightKg: 1.38, GPU: "AMD Radeon Graphics", GraphicsCardType: "integrated", ScreenResolution: "1920x1080", ProcessorModel: "AMD Ryzen 3 7320U", WarrantyYears: 1},
	{ProductName: `Zenbook Pro 14.5"`, Brand: "ASUS", Price: 1799.99, YearOfRelease: 2023, Storage: "1TB SSD", Memory: "16GB", MemoryType: "DDR5", WeightKg: 1.65, GPU: "NVIDIA GeForce RTX 4070", GraphicsCardType: "dedicated", ScreenResolution: "2880x1800", ProcessorModel: "Intel Core i9-13900H", WarrantyYears: 2},
	{ProductName: `Zenbook S 13"`, Brand: "ASUS", Price: 1299.99, YearOfRelease: 2023, Storage: "512GB SSD", Memory: "16GB", MemoryType: "LPDDR5", WeightKg: 1.0, GPU: "Intel Iris Xe", GraphicsCardType: "integrated", ScreenResolution: "2880x1800", ProcessorModel: "Intel Core i7-1355U", WarrantyYears: 1},
	{ProductName: `ProArt Studiobook 16"`, Brand: "ASUS", Price: 2499.99, YearOfRelease: 2023, Storage: "2TB SSD", Memory: "32GB", MemoryType: "DDR5", WeightKg: 2.4, GPU: "NVIDIA GeForce RTX 4070", GraphicsCardType: "dedicated", ScreenResolution: "3200x2000", ProcessorModel: "Intel Core i9-13980HX", WarrantyYears: 2},
	{ProductName: "ROG Strix SCAR", Brand: "ASUS", Price: 2899.99, YearOfRelease: 2023, Storage: "1TB SSD", Memory: "32GB", MemoryType: "DDR5", WeightKg: 2.5, GPU: "NVIDIA GeForce RTX 4090", GraphicsCardType: "dedicated", ScreenResolution: "2560x1440", ProcessorModel: "Intel Core i9-13980HX", WarrantyYears: 2},
	{ProductName: "ROG Flow X16", Brand: "ASUS", Price: 1999.99, YearOfRelease: 2023, Storage: "1TB SSD", Memory: "16GB", MemoryType: "DDR5", WeightKg: 2.1, GPU: "NVIDIA GeForce RTX 4070", GraphicsCardType: "dedicated", ScreenResolution: "2560x1600", ProcessorModel: "AMD Ryzen 9 7940HS", WarrantyYears: 2},
	{ProductName: `ROG Zephyrus 14"`, Brand: "ASUS", Price: 1599.99, YearOfRelease: 2023, Storage: "512GB SSD", Memory: "16GB", MemoryType: "DDR5", WeightKg: 1.72, GPU: "NVIDIA GeForce RTX 4060", GraphicsCardType: "dedicated", ScreenResolution: "2560x1600", ProcessorModel: "AMD Ryzen 9 7940HS", WarrantyYears: 2},
	{ProductName: "ThinkPad X13 Gen", Brand: "Lenovo", Price: 1149.00, YearOfRelease: 2023, Storage: "512GB SSD", Memory: "16GB", MemoryType: "LPDDR5", WeightKg: 1.19, GPU: "Intel Iris Xe", GraphicsCardType: "integrated", ScreenResolution: "1920x1200", ProcessorModel: "Intel Core i7-1355U", WarrantyYears: 3},
	{ProductName: "Legion Pro 5", Brand: "Lenovo", Price: 1499.99, YearOfRelease: 2023, Storage: "1TB SSD", Memory: "16GB", MemoryType: "DDR5", WeightKg: 2.5, GPU: "NVIDIA GeForce RTX 4070", GraphicsCardType: "dedicated", ScreenResolution: "2560x1600", ProcessorModel: "AMD Ryzen 7 7745HX", WarrantyYears: 2},
	{ProductName: "Legion Slim 5", Brand: "Lenovo", Price: 1249.99, YearOfRelease: 2023, Storage: "512GB SSD", Memory: "16GB", MemoryType: "DDR5", WeightKg: 1.9, GPU: "NVIDIA GeForce RTX 4060", GraphicsCardType: "dedicated", ScreenResolution: "2560x1600", ProcessorModel: "AMD Ryzen 7 7840HS", WarrantyYears: 2},
	{ProductName: `LOQ 16" Gaming`, Brand: "Lenovo", Price: 949.99, YearOfRelease: 2023, Storage: "512GB SSD", Memory: "16GB", MemoryType: "DDR5", WeightKg: 2.6, GPU: "NVIDIA GeForce RTX 4050", GraphicsCardType: "dedicated", ScreenResolution: "1920x1200", ProcessorModel: "Intel Core i5-13500H", WarrantyYears: 1},
	{ProductName: "Mobile Precision 3480", Brand: "Dell", Price: 1659.00, YearOfRelease: 2023, Storage: "512GB SSD", Memory: "16GB", MemoryType: "DDR5", WeightKg: 1.45, GPU: "NVIDIA RTX A500", GraphicsCardType: "dedicated", ScreenResolution: "1920x1080", ProcessorModel: "Intel Core i7-1370P", WarrantyYears: 3},
	{ProductName: "Vector GP68HX 16\"", Brand: "MSI", Price: 2599.00, YearOfRelease: 2023, Storage: "1TB SSD", Memory: "32GB", MemoryType: "DDR5", WeightKg: 2.67, GPU: "NVIDIA GeForce RTX 4080", GraphicsCardType: "dedicated", ScreenResolution: "2560x1440", ProcessorModel: "Intel Core i9-13950HX", WarrantyYears: 2},
	{ProductName: "Modern 15 B11M", Brand: "MSI", Price: 649.00, YearOfRelease: 2022, Storage: "512GB SSD", Memory: "8GB", MemoryType: "DDR4", WeightKg: 1.7, GPU: "Intel Iris Xe", GraphicsCardType: "integrated", ScreenResolution: "1920x1080", ProcessorModel: "Intel Core i5-1155G7", WarrantyYears: 1},
	{ProductName: "Bravo 15 15.6\"", Brand: "MSI", Price: 899.00, YearOfRelease: 2023, Storage: "512GB SSD", Memory: "16GB", MemoryType: "DDR5", WeightKg: 2.25, GPU: "NVIDIA GeForce RTX 4050", GraphicsCardType: "dedicated", ScreenResolution: "1920x1080", ProcessorModel: "AMD Ryzen 5 7535HS", WarrantyYears: 1},
	{ProductName: "Stealth 17 Studio", Brand: "MSI", Price: 2799.00, YearOfRelease: 2023, Storage: "2TB SSD", Memory: "32GB", MemoryType: "DDR5", WeightKg: 2.8, GPU: "NVIDIA GeForce RTX 4080", GraphicsCardType: "dedicated", ScreenResolution: "2560x1440", ProcessorModel: "Intel Core i9-13900H", WarrantyYears: 2},
	{ProductName: "Stealth 16 Studio", Brand: "MSI", Price: 2249.00, YearOfRelease: 2023, Storage: "1TB SSD", Memory: "32GB", MemoryType: "DDR5", WeightKg: 2.0, GPU: "NVIDIA GeForce RTX 4070", GraphicsCardType: "dedicated", ScreenResolution: "2560x1600", ProcessorModel: "Intel Core i7-13700H", WarrantyYears: 2},
	{ProductName: "Cyborg 15 A12U", Brand: "MSI", Price: 1099.00, YearOfRelease: 2023, Storage: "512GB SSD", Memory: "16GB", MemoryType: "DDR5", WeightKg: 1.98, GPU: "NVIDIA GeForce RTX 4060", GraphicsCardType: "dedicated", ScreenResolution: "1920x1080", ProcessorModel: "Intel Core i7-12650H", WarrantyYears: 1},
	{ProductName: "CreatorPro Z17 HX", Brand: "MSI", Price: 3499.00, YearOfRelease: 2023, Storage: "2TB SSD", Memory: "64GB", MemoryType: "DDR5", WeightKg: 2.49, GPU: "NVIDIA RTX 3000 Ada", GraphicsCardType: "dedicated", ScreenResolution: "2560x1600", ProcessorModel: "Intel Core i9-13950HX", WarrantyYears: 3},
	{ProductName: "Razer Blade 18", Brand: "Razer", Price: 2899.99, YearOfRelease: 2023, Storage: "1TB SSD", Memory: "32GB", MemoryType: "DDR5", WeightKg: 3.1, GPU: "NVIDIA GeForce RTX 4080", GraphicsCardType: "dedicated", ScreenResolution: "2560x1600", ProcessorModel: "Intel Core i9-13950HX", WarrantyYears: 2},
	{ProductName: "Blade 16", Brand: "Razer", Price: 2699.99, YearOfRelease: 2023, Storage: "1TB SSD", Memory: "16GB", MemoryType: "DDR5", WeightKg: 2.45, GPU: "NVIDIA GeForce RTX 4070", GraphicsCardType: "dedicated", ScreenResolution: "2560x1600", ProcessorModel: "Intel Core i9-13950HX", WarrantyYears: 2},
	{ProductName: `Asus L210 11.6"`, Brand: "ASUS", Price: 229.00, YearOfRelease: 2022, Storage: "64GB eMMC", Memory: "4GB", MemoryType: "DDR4", WeightKg: 1.05, GPU: "Intel UHD Graphics 600", GraphicsCardType: "integrated", ScreenResolution: "1366x768", ProcessorModel: "Intel Celeron N4020", WarrantyYears: 1},
	{ProductName: `OMEN 16" 240Hz`, Brand: "HP", Price: 1899.99, YearOfRelease: 2023, Storage: "1TB SSD", Memory: "16GB", MemoryType: "DDR5", WeightKg: 2.37, GPU: "NVIDIA GeForce RTX 4080", GraphicsCardType: "dedicated", ScreenResolution: "2560x1440", ProcessorModel: "Intel Core i9-13900HX", WarrantyYears: 1},
	{ProductName: `Victus 16.1 "`, Brand: "HP", Price: 1049.99, YearOfRelease: 2023, Storage: "512GB SSD", Memory: "16GB", MemoryType: "DDR5", WeightKg: 2.44, GPU: "NVIDIA GeForce RTX 4060", GraphicsCardType: "dedicated", ScreenResolution: "1920x1080", ProcessorModel: "AMD Ryzen 7 7840HS", WarrantyYears: 1},
	{ProductName: `ENVY 16" WQXGA`, Brand: "HP", Price: 1599.99, YearOfRelease: 2023, Storage: "1TB SSD", Memory: "16GB", MemoryType: "DDR5", WeightKg: 2.33, GPU: "NVIDIA GeForce RTX 4060", GraphicsCardType: "dedicated", ScreenResolution: "2560x1600", ProcessorModel: "Intel Core i9-13900H", WarrantyYears: 1},
}
